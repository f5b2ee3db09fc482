package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"time"
)

// DefaultSettleDelay is how long the print document waits after loading
// before opening the print dialog.
const DefaultSettleDelay = 800 * time.Millisecond

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: A4 landscape; margin: 15mm; }
* { margin: 0; padding: 0; box-sizing: border-box; }
* { -webkit-print-color-adjust: exact !important; print-color-adjust: exact !important; color-adjust: exact !important; }
html, body { width: 100%; height: 100%; background: #ffffff; }
body { display: flex; justify-content: center; align-items: center; }
.receipt { width: {{.Width}}px; height: {{.Height}}px; transform: scale(1.5); transform-origin: center center; }
.receipt img { display: block; width: 100%; height: 100%; }
@media print {
  html, body { width: 267mm; height: 180mm; }
  .receipt { transform: scale(1.3); }
}
</style>
</head>
<body>
<div class="receipt"><img id="receipt" src="{{.Image}}" alt="{{.Title}}"></div>
<script>
(function () {
  var settle = {{.SettleMillis}};
  var img = document.getElementById("receipt");
  var decoded = img.decode ? img.decode().catch(function () {}) : Promise.resolve();
  var fonts = document.fonts && document.fonts.ready ? document.fonts.ready : Promise.resolve();
  var loaded = new Promise(function (resolve) {
    if (document.readyState === "complete") { resolve(); } else { window.addEventListener("load", resolve); }
  });
  Promise.all([loaded, decoded, fonts]).then(function () {
    setTimeout(function () {
      window.print();
      window.onafterprint = function () { window.close(); };
    }, settle);
  });
})();
</script>
</body>
</html>
`))

type printData struct {
	Title        string
	Image        template.URL
	Width        int
	Height       int
	SettleMillis int64
}

// PrintDocument returns a standalone HTML page holding only the receipt
// image. The page prints itself once it, the image and its fonts have
// loaded and settle has elapsed.
func PrintDocument(title string, pngData []byte, cssWidth, cssHeight int, settle time.Duration) ([]byte, error) {
	if settle < 0 {
		settle = 0
	}
	data := printData{
		Title:        title,
		Image:        template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(pngData)),
		Width:        cssWidth,
		Height:       cssHeight,
		SettleMillis: settle.Milliseconds(),
	}

	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render print document: %w", err)
	}
	return buf.Bytes(), nil
}
