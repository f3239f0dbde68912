package notifications

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

// EmailNotifier implements the VerificationFlow and CompletionNotifier
// collaborators over SMTP. The tracker never awaits verification
// completion; the flow's entire observable behavior here is deciding
// the reviewer headcount and telling the ops inbox.
type EmailNotifier struct {
	dialer            *gomail.Dialer
	from              string
	opsInbox          string
	dualReviewMinimum int64
}

var sendMail = func(d *gomail.Dialer, m *gomail.Message) error {
	return d.DialAndSend(m)
}

// NewEmailNotifier wires the SMTP dialer. dualReviewMinimum is the
// requested-amount threshold above which two legal and two technical
// reviewer slots are required instead of one of each.
func NewEmailNotifier(host string, port int, user, password, from, opsInbox string, dualReviewMinimum int64) *EmailNotifier {
	return &EmailNotifier{
		dialer:            gomail.NewDialer(host, port, user, password),
		from:              from,
		opsInbox:          opsInbox,
		dualReviewMinimum: dualReviewMinimum,
	}
}

// ReviewerSlots returns the legal/technical reviewer headcount for the
// requested amount.
func (n *EmailNotifier) ReviewerSlots(requestedAmount int64) (legal, technical int) {
	if requestedAmount > n.dualReviewMinimum {
		return 2, 2
	}
	return 1, 1
}

// Initiate opens the verification-document-collection flow for a case.
func (n *EmailNotifier) Initiate(ctx context.Context, leadID string, requestedAmount int64) error {
	legal, technical := n.ReviewerSlots(requestedAmount)

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.opsInbox)
	m.SetHeader("Subject", fmt.Sprintf("Verification initiated for lead %s", leadID))
	m.SetBody("text/plain", fmt.Sprintf(
		"Verification has been initiated for lead %s (requested amount %d).\n"+
			"Reviewer slots required: %d legal, %d technical.\n"+
			"Please collect the verification documents.",
		leadID, requestedAmount, legal, technical))

	return sendMail(n.dialer, m)
}

// AppointmentDigest mails the day's appointment list to the ops inbox.
func (n *EmailNotifier) AppointmentDigest(ctx context.Context, day string, lines []string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.opsInbox)
	m.SetHeader("Subject", fmt.Sprintf("Disbursement appointments for %s", day))
	m.SetBody("text/plain", fmt.Sprintf(
		"Appointments scheduled for %s:\n\n%s", day, strings.Join(lines, "\n")))

	return sendMail(n.dialer, m)
}

// DisbursementCompleted notifies the ops inbox that a case was
// finalized.
func (n *EmailNotifier) DisbursementCompleted(ctx context.Context, leadID, leadName, paymentAmount string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.opsInbox)
	m.SetHeader("Subject", fmt.Sprintf("Disbursement completed: %s", leadName))
	m.SetBody("text/plain", fmt.Sprintf(
		"Lead %s (%s) has been marked completed.\nPayment amount: %s",
		leadID, leadName, paymentAmount))

	return sendMail(n.dialer, m)
}
