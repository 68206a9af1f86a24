package entity

// User representa una persona registrada que puede retirar stock. Email es único.
type User struct {
	ID    int64
	Name  string
	Email string
}
