package utils

import (
	"fmt"
	"log"

	"tokoku/initializers"
	"tokoku/models"

	"gopkg.in/gomail.v2"
)

// SendOrderSubmittedEmail mails the order confirmation. A missing SMTP
// config disables mailing entirely.
func SendOrderSubmittedEmail(order *models.Order) {
	config, _ := initializers.LoadConfig(".")
	if config.SMTPHost == "" {
		return
	}

	var total float64
	for _, cart := range order.Carts {
		total += cart.Product.Price * float64(cart.Quantity)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.EmailFrom)
	m.SetHeader("To", order.Email)
	m.SetHeader("Subject", fmt.Sprintf("Order %s submitted", order.Title))
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour order %q has been submitted. Total: %.2f.\nPlease upload your payment proof to complete the order.\n",
		order.Name, order.Title, total))

	d := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPass)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("failed to send order email for %s: %v", order.ID, err)
	}
}
