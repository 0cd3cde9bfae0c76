package entity

type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	CPF   string   `json:"cpf"`
	Phone string   `json:"phone,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// Session is the cached projection of an authenticated customer plus
// the bearer token pair issued by the auth service.
type Session struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

type LoginRequest struct {
	EmailOrCPF string `json:"emailOrCpf"`
	Password   string `json:"password"`
}

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	CPF             string `json:"cpf"`
	Phone           string `json:"phone,omitempty"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}
