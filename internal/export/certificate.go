package export

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var certificateTemplate = template.Must(template.New("certificate").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Codecade certificate</title>
<style>
body { font-family: Georgia, serif; text-align: center; margin-top: 6rem; }
.frame { display: inline-block; border: 6px double #8B5CF6; padding: 3rem 5rem; }
h1 { letter-spacing: 0.2em; text-transform: uppercase; }
.badge { font-size: 1.6rem; margin: 1.5rem 0; }
.date { color: #666; }
</style>
</head>
<body>
<div class="frame">
<h1>Certificate of Achievement</h1>
<p>This certifies that the bearer has unlocked</p>
<p class="badge">{{.Icon}} {{.Name}}</p>
<p>{{.Description}}</p>
<p class="date">{{.Date}}</p>
</div>
</body>
</html>
`))

// CertificateInput names the unlocked badge to certify.
type CertificateInput struct {
	Name        string
	Description string
	Icon        string
}

// WriteCertificate renders a downloadable HTML certificate for an unlocked
// badge into dir and returns the file path.
func WriteCertificate(in CertificateInput, dir string, now time.Time) (string, error) {
	if in.Name == "" {
		return "", fmt.Errorf("badge name is required")
	}
	if dir == "" {
		dir = "."
	}

	slug := strings.ToLower(strings.ReplaceAll(in.Name, " ", "-"))
	path := filepath.Join(dir, fmt.Sprintf("codecade-certificate-%s.html", slug))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create certificate: %w", err)
	}
	defer func() { _ = f.Close() }()

	err = certificateTemplate.Execute(f, struct {
		CertificateInput
		Date string
	}{in, now.Format("January 2, 2006")})
	if err != nil {
		return "", fmt.Errorf("render certificate: %w", err)
	}
	return path, nil
}
