package models

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

func (s *EmailService) SendResetCodeEmail(toEmail, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Password Reset Code - Local Market")

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #f97316; text-align: center; }
        .code-box { background-color: #fff7ed; border: 2px dashed #f97316; padding: 20px; text-align: center; margin: 30px 0; border-radius: 8px; }
        .code { font-size: 36px; font-weight: bold; color: #f97316; letter-spacing: 8px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">Local Market</div>
        <h2>Password Reset Request</h2>
        <p>Use the following code to reset your password:</p>
        <div class="code-box"><div class="code">%s</div></div>
        <p><strong>This code will expire in 5 minutes.</strong></p>
        <p>If you did not request a password reset, please ignore this email.</p>
    </div>
</body>
</html>
	`, code)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *EmailService) SendOrderConfirmationEmail(toEmail string, order *Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation %s - Local Market", order.OrderNumber))

	var rows strings.Builder
	for _, item := range order.Items {
		rows.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td>%d</td><td>%.2f</td><td>%.2f</td></tr>",
			item.ProductName, item.Quantity, item.Price, item.Price*float64(item.Quantity)))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #f97316; text-align: center; }
        .order-box { background-color: #fff7ed; padding: 20px; margin: 20px 0; border-radius: 8px; }
        table { width: 100%%; border-collapse: collapse; }
        td, th { border: 1px solid #eee; padding: 8px; text-align: left; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">Local Market</div>
        <h2>Thank you for your order!</h2>
        <div class="order-box">
            <p><strong>Order Number:</strong> %s</p>
            <p><strong>Total:</strong> %.2f</p>
        </div>
        <table>
            <thead><tr><th>Product</th><th>Qty</th><th>Price</th><th>Total</th></tr></thead>
            <tbody>%s</tbody>
        </table>
        <p>Your order has been received and is being processed. We'll notify you when it is ready.</p>
    </div>
</body>
</html>
	`, order.OrderNumber, order.Total, rows.String())

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
