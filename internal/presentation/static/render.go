// Package static renders a digest as a single self-contained HTML page.
// The page inlines its stylesheet so the file can be opened directly from
// disk.
package static

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/tesso57/akhbar/internal/domain/press"
)

const dateLayout = "02 January 2006"

var page = template.Must(template.New("newsletter").Parse(pageTemplate))

type pageData struct {
	Date     string
	Sections []section
}

type section struct {
	Subject  press.Subject
	Articles []press.Article
}

// Render produces the newsletter HTML for a digest. Subjects without
// articles get no section.
func Render(digest *press.Digest) ([]byte, error) {
	data := pageData{Date: digest.GeneratedAt.Format(dateLayout)}
	for _, subject := range digest.ActiveSubjects() {
		data.Sections = append(data.Sections, section{
			Subject:  subject,
			Articles: digest.Articles(subject),
		})
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render newsletter: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the digest and writes it to path.
func WriteFile(path string, digest *press.Digest) error {
	html, err := Render(digest)
	if err != nil {
		return err
	}
	return os.WriteFile(path, html, 0644)
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <title>CSS Current Affairs Newsletter</title>
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <link rel="preconnect" href="https://fonts.googleapis.com" />
  <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin />
  <link href="https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&display=swap" rel="stylesheet" />
  <style>
    :root {
      --primary: #035076;
      --bg: #f5f7fb;
      --card-bg: #ffffff;
      --text-main: #111827;
      --text-muted: #6b7280;
      --border: #e5e7eb;
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 0;
      font-family: 'Inter', system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      background: var(--bg);
      color: var(--text-main);
    }
    .container {
      max-width: 900px;
      margin: 24px auto 40px;
      padding: 0 16px;
    }
    header {
      background: var(--primary);
      color: white;
      padding: 20px 16px;
      margin: -8px 0 24px;
    }
    header h1 {
      margin: 0;
      font-size: 1.8rem;
      font-weight: 600;
    }
    header p {
      margin: 4px 0 0;
      font-size: 0.95rem;
      opacity: 0.85;
    }
    .date {
      margin: 0 0 24px;
      font-size: 0.9rem;
      color: var(--text-muted);
    }
    .subject {
      margin-bottom: 28px;
    }
    .subject h2 {
      font-size: 1.2rem;
      margin-bottom: 8px;
      color: var(--primary);
      border-left: 4px solid var(--primary);
      padding-left: 8px;
    }
    .subject-description {
      margin: 0 0 10px;
      font-size: 0.9rem;
      color: var(--text-muted);
    }
    .item {
      background: var(--card-bg);
      border-radius: 10px;
      border: 1px solid var(--border);
      padding: 10px 12px;
      margin-bottom: 8px;
    }
    .item h3 {
      margin: 0 0 4px;
      font-size: 0.95rem;
    }
    .meta {
      margin: 0 0 4px;
      font-size: 0.75rem;
      text-transform: uppercase;
      letter-spacing: 0.04em;
      color: var(--text-muted);
    }
    .summary {
      margin: 0 0 6px;
      font-size: 0.88rem;
      color: var(--text-main);
    }
    a {
      color: var(--primary);
      text-decoration: none;
      font-size: 0.85rem;
    }
    a:hover {
      text-decoration: underline;
    }
    footer {
      margin-top: 32px;
      font-size: 0.8rem;
      color: var(--text-muted);
      text-align: center;
    }
  </style>
</head>
<body>
  <header>
    <div class="container">
      <h1>CSS Current Affairs Newsletter</h1>
      <p>Dawn & The Express Tribune • Key news and op-eds • Essay-focused subjects</p>
    </div>
  </header>
  <main class="container">
    <p class="date">Generated on {{.Date}} (for personal reading / CSS prep)</p>
{{range .Sections}}    <section class="subject">
      <h2>{{.Subject}}</h2>
      <p class="subject-description">Scan these for arguments, data points, and case studies you can plug into essays.</p>
{{range .Articles}}      <article class="item">
        <h3>{{.Title}}</h3>
        <p class="meta">{{.Source}}</p>
{{with .Summary}}        <p class="summary">{{.}}</p>
{{end}}        <a href="{{.Link}}" target="_blank" rel="noopener noreferrer">Read full piece</a>
      </article>
{{end}}    </section>
{{end}}  </main>
  <footer>
    Curated automatically from public RSS feeds of Dawn & The Express Tribune for personal study use.
  </footer>
</body>
</html>
`
