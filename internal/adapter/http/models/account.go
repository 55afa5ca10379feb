package models

type CreateAccountRequest struct {
	CPF  string `json:"cpf"`
	Name string `json:"name"`
}

type UpdateAccountRequest struct {
	Name string `json:"name"`
}
