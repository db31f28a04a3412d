package update

import (
	"fmt"
	"strings"

	"github.com/tesso57/akhbar/internal/presentation/tui/presenter"
)

const detailSectionDivider = "----------------------------------------"

func buildDetailContent(i *presenter.Item, body string) string {
	if i == nil {
		return ""
	}

	title := strings.TrimSpace(i.TitleText)
	meta := strings.TrimSpace(i.Source)
	if i.Subject != "" {
		if meta != "" {
			meta = fmt.Sprintf("%s | %s", meta, i.Subject)
		} else {
			meta = string(i.Subject)
		}
	}

	summary := strings.TrimSpace(i.Summary)
	if summary == "" {
		summary = "(The feed carried no summary for this piece.)"
	}
	body = strings.TrimSpace(body)
	if body == "" {
		body = "(Body not fetched. Press f to load the full text.)"
	}

	header := title
	if meta != "" {
		header = fmt.Sprintf("%s\n%s", title, meta)
	}
	if strings.TrimSpace(header) == "" {
		return fmt.Sprintf(
			"%s\nSummary\n%s\n\n%s\nArticle Body\n%s",
			detailSectionDivider, summary,
			detailSectionDivider, body,
		)
	}

	return fmt.Sprintf(
		"%s\n\n%s\nSummary\n%s\n\n%s\nArticle Body\n%s",
		header,
		detailSectionDivider, summary,
		detailSectionDivider, body,
	)
}
