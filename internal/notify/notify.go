package notify

import (
	"fmt"
	"io"
	"log"
	"net/smtp"
	"strings"
)

// Notifier sends the fixed payment-confirmation message to a recipient.
// Sending is best-effort from the caller's point of view; failures are
// logged by the caller and never fail a checkout.
type Notifier interface {
	SendPaymentConfirmation(to string) error
}

// Mailer sends confirmation email over SMTP.
type Mailer struct {
	host       string
	port       string
	user       string
	password   string
	senderName string
}

func NewMailer(host, port, user, password, senderName string) *Mailer {
	return &Mailer{
		host:       host,
		port:       port,
		user:       user,
		password:   password,
		senderName: senderName,
	}
}

func (m *Mailer) SendPaymentConfirmation(to string) error {
	subject := "تأكيد الدفع — شكراً لتسوقك معنا"
	body := strings.Join([]string{
		"مرحباً،",
		"",
		"تم إكمال عملية الدفع بنجاح. نشكرك على ثقتك وتسوقك معنا.",
		"نحن نجهّز طلبك الآن، وسنرسل لك تحديثاً فور تجهيز الشحنة.",
		"",
		"لو عندك أي سؤال أو تحتاج مساعدة، تقدر ترد على هذا الإيميل مباشرة.",
		"",
		"تحياتنا،",
		m.senderName,
	}, "\r\n")

	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		m.senderName, m.user, to, subject, body)

	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return smtp.SendMail(addr, auth, m.user, []string{to}, []byte(msg))
}

// LogNotifier is used when SMTP credentials are absent; it records the
// attempt instead of sending.
type LogNotifier struct {
	logger *log.Logger
}

func NewLogNotifier(logger *log.Logger) *LogNotifier {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendPaymentConfirmation(to string) error {
	n.logger.Printf("notify: mail not configured, skipping confirmation to %s", to)
	return nil
}
