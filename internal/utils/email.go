package utils

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"msvosa_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

// SendEmail sends an HTML email through the association's SMTP relay,
// optionally attaching a PDF.
func SendEmail(to, subject, htmlBody string, pdfAttachment []byte) error {
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@msvosa.org"
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if pdfAttachment != nil {
		msg.AttachReader("msvosa_order.pdf", bytes.NewReader(pdfAttachment))
	}

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return fmt.Errorf("SMTP_HOST not configured")
	}

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Sending email to", to)
	return client.DialAndSend(msg)
}

// OrderConfirmationHTML renders the customer-facing order summary.
func OrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%d</td>
				<td style="padding: 8px; border: 1px solid #ddd;">$%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">$%s</td>
			</tr>`, item.Name, item.Quantity, item.Price.StringFixed(2), item.Subtotal().StringFixed(2))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Order Received</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #1e3a8a;">Order Received</h2>
		<p>Dear %s,</p>
		<p>Thank you for supporting MSVOSA. Your order request #%d has been sent to the association administration; payment details will follow by email.</p>

		<h3>Order details</h3>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Item</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Qty</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Unit price</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>
				%s
			</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right; font-weight: bold;">Total:</td>
					<td style="padding: 10px; font-weight: bold;">$%s</td>
				</tr>
			</tfoot>
		</table>

		<p style="margin-top: 30px; color: #555;">
			With pride,<br>
			<strong>The MSVOSA Committee</strong>
		</p>
	</div>
</body>
</html>`, order.CustomerName, order.ID, itemsHTML, order.TotalAmount.StringFixed(2))
}

// OrderNotificationHTML renders the heads-up sent to the association
// when a new order arrives.
func OrderNotificationHTML(order models.Order) string {
	return fmt.Sprintf(`
<p>New shop order #%d.</p>
<p><strong>%s</strong> — %s / %s</p>
<p>%d item line(s), total $%s. Status: %s.</p>
<p>Review it in the admin dashboard.</p>`,
		order.ID, order.CustomerName, order.CustomerEmail, order.CustomerPhone,
		len(order.Items), order.TotalAmount.StringFixed(2), order.Status)
}
