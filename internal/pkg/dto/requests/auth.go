package requests

type RegisterUser struct {
	Name           string `json:"name" validate:"required,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Username       string `json:"username" validate:"required,alphanum,min=4,max=30"`
	Password       string `json:"password" validate:"password"`
	RetypePassword string `json:"retype_password" validate:"required,eqfield=Password"`
	Role           string `json:"role" validate:"required,user_role"`
	HashedPassword string `json:"-"`

	// Set by the controller when the request carries a valid superadmin API key.
	IsAPIKeyAuthorized bool `json:"-"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Username string `json:"username" validate:"required_without=Email"`
	Password string `json:"password" validate:"required"`
}
