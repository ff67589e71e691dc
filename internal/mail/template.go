package mail

import (
	"html/template"
	"strings"
)

// DigestJob is one job row in the weekly digest email.
type DigestJob struct {
	Name        string
	CompanyName string
	Location    string
	Salary      float64
	Skills      []string
}

// DigestData feeds the digest template.
type DigestData struct {
	SubscriberName string
	Jobs           []DigestJob
}

var digestTemplate = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #222;">
  <h2>New jobs matching your skills</h2>
  <p>Hi {{.SubscriberName}},</p>
  <p>These openings match the skills you subscribed to:</p>
  <table cellpadding="8" style="border-collapse: collapse;">
    <tr>
      <th align="left">Job</th>
      <th align="left">Company</th>
      <th align="left">Location</th>
      <th align="left">Salary</th>
    </tr>
    {{range .Jobs}}
    <tr style="border-top: 1px solid #ddd;">
      <td>{{.Name}}</td>
      <td>{{.CompanyName}}</td>
      <td>{{.Location}}</td>
      <td>{{printf "%.0f" .Salary}}</td>
    </tr>
    {{end}}
  </table>
  <p style="color: #888; font-size: 12px;">You receive this weekly digest because you subscribed on WorkHive.</p>
</body>
</html>`))

// RenderDigest renders the weekly digest email body.
func RenderDigest(data DigestData) (string, error) {
	var out strings.Builder
	if err := digestTemplate.Execute(&out, data); err != nil {
		return "", err
	}
	return out.String(), nil
}
