package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"

	"progas_back_end/internal/models"
)

// newMailClient builds an SMTP client from the environment. Returns nil when
// SMTP_HOST is unset so callers can skip mail in development.
func newMailClient() (*mail.Client, error) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil, nil
	}

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	return mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
}

func senderAddress() string {
	if from := os.Getenv("SMTP_FROM"); from != "" {
		return from
	}
	return "noreply@progas.co.ke"
}

func send(to, subject, htmlBody string) error {
	client, err := newMailClient()
	if err != nil {
		return err
	}
	if client == nil {
		log.Println("⚠️ SMTP not configured, skipping mail to", to)
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(senderAddress()); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	log.Println("📤 Sending mail to", to)
	return client.DialAndSend(msg)
}

// SendOrderConfirmation mails the customer a summary of their new order.
func SendOrderConfirmation(to string, order models.Order) error {
	return send(to, "Order confirmation "+order.ID, orderConfirmationHTML(order))
}

// SendContactNotification forwards a contact-form submission to the shop inbox.
func SendContactNotification(msg models.ContactMessage) error {
	inbox := os.Getenv("CONTACT_INBOX")
	if inbox == "" {
		log.Println("⚠️ CONTACT_INBOX not configured, skipping contact notification")
		return nil
	}
	body := fmt.Sprintf(`
		<h3>New contact message</h3>
		<p><strong>From:</strong> %s (%s)</p>
		<p><strong>Subject:</strong> %s</p>
		<p>%s</p>`, msg.Name, msg.Email, msg.Subject, msg.Message)
	return send(inbox, "Contact form: "+msg.Subject, body)
}

func orderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>KSh %.0f</td>
				<td>KSh %.0f</td>
			</tr>`, item.Name, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Order confirmation</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Thank you for your order, %s!</h2>
		<p>Your order <strong>%s</strong> has been received and is being processed.
		Payment is %s. You can cancel within 2 hours of placing the order.</p>
		<table width="100%%" cellpadding="6" style="border-collapse: collapse;">
			<tr style="background-color: #f0f0f0;">
				<th align="left">Item</th><th align="left">Qty</th>
				<th align="left">Price</th><th align="left">Subtotal</th>
			</tr>%s
		</table>
		<p style="font-size: 18px;"><strong>Total: KSh %.0f</strong></p>
		<p>Delivery address: %s</p>
		<p>Track your order anytime with your order number or phone number.</p>
	</div>
</body>
</html>`, order.CustomerName, order.ID, order.PaymentMethod, itemsHTML, order.Total, order.Address)
}
