package email

// Message письмо для отправки
type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string // необязательно
}
