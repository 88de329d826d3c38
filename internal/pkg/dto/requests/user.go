package requests

type QueryUsers struct {
	Role   string
	Search string
	Pagination
}
