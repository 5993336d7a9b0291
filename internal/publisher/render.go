package publisher

import (
	"fmt"
	"strings"

	"github.com/fl196/daily-news-bot/internal/digest"
)

// categoryMeta is static display metadata keyed by the shared category
// enumeration, so every built category has a rendered section.
type categoryMeta struct {
	Icon  string
	Label string
	Blurb string
}

var catInfo = map[digest.Category]categoryMeta{
	digest.National:      {"📰", "NATIONAL (INDIA)", "Govt schemes, laws, policies"},
	digest.International: {"🌍", "INTERNATIONAL", "Global news, India relations"},
	digest.Economy:       {"💰", "ECONOMY & BUSINESS", "Money, markets, companies"},
	digest.Science:       {"📈", "SCIENCE & TECH", "AI, space, inventions"},
	digest.Education:     {"🎓", "EDUCATION & EXAMS", "Exams, results, admissions"},
	digest.Environment:   {"🌱", "ENVIRONMENT", "Climate, disasters"},
	digest.Technology:    {"📊", "TECHNOLOGY", "Tech news, AI"},
	digest.Health:        {"🏥", "HEALTH", "Medical, wellness"},
}

const maxURLDisplayLen = 40

// Subject returns the email subject line for a digest.
func Subject(d *digest.Digest) string {
	return fmt.Sprintf("📰 Daily News - %s (%d updates)", DateString(d), d.Total())
}

// DateString formats the digest date for display.
func DateString(d *digest.Digest) string {
	return d.Date.Format("January 02, 2006")
}

// BuildHTML renders the digest as a self-contained HTML document with inline
// styles. Categories without articles produce no section. Article fields are
// inserted verbatim; content originates from the API, not user input.
func BuildHTML(d *digest.Digest) string {
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html>
<html><head><meta charset='UTF-8'><meta name='viewport' content='width=device-width, initial-scale=1.0'>
<title>Daily News</title>
<style>
body{font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;background:#f5f7fa;padding:15px}
.container{max-width:680px;margin:0 auto}
.header{background:linear-gradient(135deg,#1e3c72,#2a5298);color:white;padding:30px;border-radius:16px;text-align:center;margin-bottom:20px}
.category{background:white;border-radius:12px;padding:20px;margin-bottom:18px;box-shadow:0 2px 8px rgba(0,0,0,0.06)}
.cat-header{display:flex;align-items:center;margin-bottom:15px;padding-bottom:12px;border-bottom:2px solid #f0f2f5}
.cat-icon{font-size:26px;margin-right:12px}
.cat-title{font-size:18px;font-weight:700;color:#1e3c72}
.news-item{padding:14px 0;border-bottom:1px solid #f0f0f0}
.news-title{font-size:15px;font-weight:600;margin-bottom:6px}
.news-title a{color:#2a5298;text-decoration:none}
.news-source{font-size:12px;color:#888;margin-bottom:8px}
.news-summary{font-size:14px;color:#555;background:#f8f9fa;padding:12px;border-radius:8px;border-left:3px solid #2a5298}
.read-btn{display:inline-block;margin-top:8px;font-size:13px;color:#2a5298;text-decoration:none;font-weight:500}
.stats{background:#e8f4fd;padding:12px;border-radius:8px;text-align:center;margin-bottom:20px;font-size:14px;color:#1e3c72}
</style></head><body><div class='container'>`)

	sb.WriteString(fmt.Sprintf("<div class='header'><h1>📰 Your Daily News Briefing</h1><p>%s • Easy to understand</p></div>", DateString(d)))

	for _, cat := range digest.Order {
		articles := d.Articles[cat]
		if len(articles) == 0 {
			continue
		}
		meta := catInfo[cat]
		sb.WriteString(fmt.Sprintf(`<div class="category"><div class="cat-header"><span class="cat-icon">%s</span><span class="cat-title">%s</span></div>`,
			meta.Icon, meta.Label))
		for _, a := range articles {
			sb.WriteString(fmt.Sprintf(`<div class="news-item"><div class="news-title"><a href="%s" target="_blank">%s</a></div><div class="news-source">📰 %s</div><div class="news-summary">%s</div><a href="%s" class="read-btn" target="_blank">→ Read full article</a></div>`,
				a.URL, a.Title, a.Source, a.Summary, a.URL))
		}
		sb.WriteString("</div>")
	}

	sb.WriteString(fmt.Sprintf("<div class='stats'>📊 %d stories from %d categories</div></div></body></html>",
		d.Total(), d.CategoryCount()))

	return sb.String()
}

// BuildText renders the plain-text equivalent of the digest. URL display is
// hard-truncated at 40 characters.
func BuildText(d *digest.Digest) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📰 DAILY NEWS - %s\n%s\n\n", DateString(d), strings.Repeat("=", 50)))

	for _, cat := range digest.Order {
		articles := d.Articles[cat]
		if len(articles) == 0 {
			continue
		}
		meta := catInfo[cat]
		sb.WriteString(fmt.Sprintf("%s %s\n%s\n", meta.Icon, meta.Label, strings.Repeat("─", 40)))
		for i, a := range articles {
			sb.WriteString(fmt.Sprintf("%d. %s\n   📝 %s\n   🔗 %s...\n\n", i+1, a.Title, a.Summary, truncateURL(a.URL)))
		}
	}

	sb.WriteString(fmt.Sprintf("%s\n🔄 Auto-generated | %d stories", strings.Repeat("=", 50), d.Total()))

	return sb.String()
}

func truncateURL(u string) string {
	if r := []rune(u); len(r) > maxURLDisplayLen {
		return string(r[:maxURLDisplayLen])
	}
	return u
}
