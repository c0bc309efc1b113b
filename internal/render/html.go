// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/jeranaias/tweetgen/internal/media"
	"github.com/jeranaias/tweetgen/internal/post"
)

// =============================================================================
// HTML DOCUMENT
// =============================================================================

// CardID is the id of the card element inside the HTML document.
const CardID = "tweet-card"

// Card widths in CSS pixels for the two preview layouts.
const (
	WideWidth   = 680
	NarrowWidth = 375
)

// ReadySelector matches the document body once the render acknowledgment
// for theme has fired.
func ReadySelector(theme string) string {
	return fmt.Sprintf(`body[data-ready=%q]`, theme)
}

// CardSelector matches the card element.
func CardSelector() string {
	return "#" + CardID
}

// HTMLOptions controls document layout.
type HTMLOptions struct {
	// Width is the card width in CSS pixels. Zero means WideWidth.
	Width int
}

type htmlView struct {
	Card
	CSS       template.CSS
	AvatarSrc template.URL
	MediaSrc  template.URL
	IsVideo   bool
	BadgeFill string
}

// HTML renders the card as a self-contained document. Once fonts and media
// have settled, a script sets data-ready on the body to the card's theme.
func HTML(c Card, opts HTMLOptions) ([]byte, error) {
	width := opts.Width
	if width <= 0 {
		width = WideWidth
	}

	view := htmlView{
		Card: c,
		CSS:  stylesheet(PaletteFor(c.Dark), width),
	}
	if c.Avatar.HasImage() {
		view.AvatarSrc = template.URL(c.Avatar.ImageURI)
	}
	if c.Media != nil {
		view.MediaSrc = template.URL(c.Media.DataURI)
		view.IsVideo = c.MediaType == media.KindVideo
	}
	switch c.Badge {
	case post.BadgeBlue:
		view.BadgeFill = BadgeBlueColor
	case post.BadgeGold:
		view.BadgeFill = BadgeGoldColor
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render card document: %w", err)
	}
	return buf.Bytes(), nil
}

func stylesheet(p Palette, width int) template.CSS {
	return template.CSS(fmt.Sprintf(`
* { box-sizing: border-box; margin: 0; padding: 0; }
html, body { background: %[1]s; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; padding: 16px; }
#tweet-card { width: %[9]dpx; background: %[1]s; border: 1px solid %[2]s; border-radius: 16px; padding: 24px; color: %[3]s; }
.row { display: flex; align-items: flex-start; }
.avatar { width: 40px; height: 40px; border-radius: 50%%; margin-right: 12px; flex-shrink: 0; object-fit: cover; }
.initials { display: flex; align-items: center; justify-content: center; background: linear-gradient(to bottom right, %[7]s, %[8]s); color: #ffffff; font-weight: 600; font-size: 14px; line-height: 1; }
.body { flex: 1; min-width: 0; }
.header { display: flex; align-items: center; gap: 8px; margin-bottom: 4px; font-size: 15px; }
.name { font-weight: 700; color: %[3]s; display: flex; align-items: center; gap: 4px; white-space: nowrap; overflow: hidden; text-overflow: ellipsis; }
.badge { width: 18px; height: 18px; flex-shrink: 0; }
.muted { color: %[4]s; white-space: nowrap; }
.more { margin-left: auto; color: %[4]s; display: flex; }
.content { font-size: 15px; line-height: 1.3125; margin: 8px 0 12px; white-space: pre-wrap; word-wrap: break-word; }
.entity { color: %[5]s; }
.media { margin-top: 12px; display: flex; justify-content: center; }
.media img, .media video { max-width: 100%%; max-height: 384px; object-fit: contain; border-radius: 16px; background: transparent; }
.metrics { display: flex; justify-content: space-between; align-items: center; margin-top: 12px; font-size: 14px; color: %[4]s; }
.metric { display: flex; align-items: center; gap: 4px; }
.metric svg { width: 20px; height: 20px; margin: 6px; }
.active { color: %[5]s; }
.liked { color: %[6]s; }
.liked svg { fill: currentColor; }
.actions { display: flex; gap: 4px; }
`, p.Background, p.Border, p.Text, p.Muted, p.Entity, p.Liked, p.AvatarFrom, p.AvatarTo, width))
}

var documentTemplate = template.Must(template.New("card").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="generator" content="tweetgen">
<title>@{{.Handle}}</title>
<style>{{.CSS}}</style>
</head>
<body class="{{.ThemeName}}">
<div id="tweet-card" data-theme="{{.ThemeName}}">
  <div class="row">
    {{- if .Avatar.HasImage}}
    <img class="avatar" src="{{.AvatarSrc}}" alt="Profile">
    {{- else}}
    <div class="avatar initials"><span>{{.Avatar.Initials}}</span></div>
    {{- end}}
    <div class="body">
      <div class="header">
        <span class="name"><span>{{.DisplayName}}</span>
          {{- if .HasBadge}}
          <svg class="badge" viewBox="0 0 24 24" aria-label="{{.Badge}} badge"><path fill="{{.BadgeFill}}" d="M22.25 12c0-1.43-.88-2.67-2.19-3.34.46-1.39.2-2.9-.81-3.91s-2.52-1.27-3.91-.81c-.66-1.31-1.91-2.19-3.34-2.19s-2.67.88-3.33 2.19c-1.4-.46-2.91-.2-3.92.81s-1.26 2.52-.8 3.91c-1.31.67-2.2 1.91-2.2 3.34s.89 2.67 2.2 3.34c-.46 1.39-.21 2.9.8 3.91s2.52 1.26 3.91.81c.67 1.31 1.91 2.19 3.34 2.19s2.68-.88 3.34-2.19c1.39.45 2.9.2 3.91-.81s1.27-2.52.81-3.91c1.31-.67 2.19-1.91 2.19-3.34z"/><path fill="#ffffff" d="m10.54 16.2-3.74-3.74 1.41-1.41 2.33 2.33 5.66-5.66 1.41 1.41z"/></svg>
          {{- end}}
        </span>
        <span class="muted">@{{.Handle}}</span>
        <span class="muted">·</span>
        <span class="muted">{{.Timestamp}}</span>
        <span class="more"><svg width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><circle cx="12" cy="12" r="1"/><circle cx="19" cy="12" r="1"/><circle cx="5" cy="12" r="1"/></svg></span>
      </div>
      <div class="content">
        {{- range .Tokens}}{{if .IsEntity}}<span class="entity">{{.Text}}</span>{{else}}<span>{{.Text}}</span>{{end}} {{end -}}
      </div>
      {{- if .Media}}
      <div class="media">
        {{- if .IsVideo}}
        <video src="{{.MediaSrc}}" preload="auto" muted></video>
        {{- else}}
        <img src="{{.MediaSrc}}" alt="Tweet media">
        {{- end}}
      </div>
      {{- end}}
      <div class="metrics">
        <div class="metric"><svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M7.9 20A9 9 0 1 0 4 16.1L2 22Z"/></svg><span>{{.Metrics.Comments}}</span></div>
        <div class="metric{{if .Retweeted}} active{{end}}"><svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="m2 9 3-3 3 3"/><path d="M13 18H7a2 2 0 0 1-2-2V6"/><path d="m22 15-3 3-3-3"/><path d="M11 6h6a2 2 0 0 1 2 2v10"/></svg><span>{{.Metrics.Retweets}}</span></div>
        <div class="metric{{if .Liked}} liked{{end}}"><svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"/></svg><span>{{.Metrics.Likes}}</span></div>
        <div class="metric"><svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M3 3v18h18"/><path d="M18 17V9"/><path d="M13 17V5"/><path d="M8 17v-3"/></svg><span>{{.Metrics.Views}}</span></div>
        <div class="actions">
          <div class="metric"><svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="m19 21-7-4-7 4V5a2 2 0 0 1 2-2h10a2 2 0 0 1 2 2v16z"/></svg></div>
          <div class="metric"><svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M4 12v8a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2v-8"/><polyline points="16 6 12 2 8 6"/><line x1="12" x2="12" y1="2" y2="15"/></svg></div>
        </div>
      </div>
    </div>
  </div>
</div>
<script>
(function () {
  var theme = document.getElementById("tweet-card").getAttribute("data-theme");
  var waits = [];
  if (document.fonts && document.fonts.ready) {
    waits.push(document.fonts.ready);
  }
  Array.prototype.forEach.call(document.images, function (img) {
    if (img.decode) {
      waits.push(img.decode().catch(function () {}));
    }
  });
  Array.prototype.forEach.call(document.querySelectorAll("video"), function (v) {
    if (v.readyState >= 2) {
      return;
    }
    waits.push(new Promise(function (resolve) {
      v.addEventListener("loadeddata", resolve, { once: true });
      v.addEventListener("error", resolve, { once: true });
    }));
  });
  Promise.all(waits).then(function () {
    requestAnimationFrame(function () {
      document.body.setAttribute("data-ready", theme);
    });
  });
})();
</script>
</body>
</html>
`))
