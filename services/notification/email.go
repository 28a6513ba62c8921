package notification

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// MailerConfig holds SMTP settings for outbound email.
type MailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends notification email over SMTP.
type Mailer struct {
	client *mail.Client
	from   string
}

// NewMailer builds a Mailer from SMTP settings.
func NewMailer(cfg MailerConfig) (*Mailer, error) {
	c, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("could not initialize smtp client: %w", err)
	}
	return &Mailer{client: c, from: cfg.From}, nil
}

// SendPaymentSuccess delivers the payment confirmation email.
func (m *Mailer) SendPaymentSuccess(ctx context.Context, p PaymentSuccessPayload) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("failed to set From address: %w", err)
	}
	if err := msg.To(p.CustomerEmail); err != nil {
		return fmt.Errorf("failed to set To address: %w", err)
	}
	msg.Subject("Payment Successful - Wedding Sparks")
	msg.SetBodyString(mail.TypeTextHTML, paymentSuccessBody(p))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send payment success email: %w", err)
	}
	return nil
}

func paymentSuccessBody(p PaymentSuccessPayload) string {
	const dateLayout = "02 Jan 2006"
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; padding: 20px; border: 1px solid #ddd; border-radius: 8px;">
  <h2 style="color: #4CAF50;">Payment Successful!</h2>
  <p>Dear %s,</p>
  <p>Thank you for your payment for the booking <strong>%s</strong>.</p>
  <p>Here are your booking details:</p>
  <ul>
    <li><strong>Vendor:</strong> %s</li>
    <li><strong>Location:</strong> %s</li>
    <li><strong>Booking Dates:</strong> %s to %s</li>
    <li><strong>Total Price:</strong> &#8377;%.2f</li>
  </ul>
  <p>If you have any questions, feel free to contact us.</p>
  <p style="color: #888;">Regards,<br/>Wedding Sparks Team</p>
</div>`,
		p.CustomerName,
		p.ListingName,
		p.VendorName,
		p.City,
		p.FromDate.Format(dateLayout),
		p.ToDate.Format(dateLayout),
		p.Amount,
	)
}
