package notifications

import (
	"bytes"
	"html/template"

	"github.com/isamardev/graphify/internal/leads"
)

const contactNotificationTemplate = `<!DOCTYPE html>
<html>
<body>
  <h3>New contact lead</h3>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Phone:</strong> {{.Phone}}</p>
  <p><strong>Business type:</strong> {{.BusinessType}}</p>
  <p><strong>Budget:</strong> {{.ProjectBudget}}</p>
  <p><strong>Timeline:</strong> {{.ProjectTimeline}}</p>
  <p><strong>Reference file:</strong> {{.ReferenceFile}}</p>
  <p><strong>ID:</strong> {{.ID}}</p>
  <p><strong>Details:</strong><br/>{{.ProjectDetail}}</p>
</body>
</html>`

const quoteNotificationTemplate = `<!DOCTYPE html>
<html>
<body>
  <h3>New quote request</h3>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Phone:</strong> {{.Phone}}</p>
  <p><strong>Project type:</strong> {{.ProjectType}}</p>
  <p><strong>Budget range:</strong> {{.BudgetRange}}</p>
  <p><strong>Preferred style:</strong> {{.PreferredStyle}}</p>
  <p><strong>Wall dimension:</strong> {{.WallDimension}}</p>
  <p><strong>Deadline:</strong> {{.ProjectDeadline}}</p>
  <p><strong>Reference image:</strong> {{.ReferenceImage}}</p>
  <p><strong>ID:</strong> {{.ID}}</p>
  <p><strong>Description:</strong><br/>{{.ProjectDescription}}</p>
</body>
</html>`

var contactNotificationTmpl = template.Must(template.New("contact_notification").Parse(contactNotificationTemplate))
var quoteNotificationTmpl = template.Must(template.New("quote_notification").Parse(quoteNotificationTemplate))

func buildContactNotificationHTML(contact leads.Contact) (string, error) {
	var buf bytes.Buffer
	if err := contactNotificationTmpl.Execute(&buf, contact); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildQuoteNotificationHTML(quote leads.Quote) (string, error) {
	var buf bytes.Buffer
	if err := quoteNotificationTmpl.Execute(&buf, quote); err != nil {
		return "", err
	}
	return buf.String(), nil
}
