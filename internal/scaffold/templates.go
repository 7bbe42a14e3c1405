package scaffold

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed scaffolds
var scaffoldFS embed.FS

// htmlText escapes only what HTML text and <title> content require, so
// apostrophes and quotes stay literal.
var htmlText = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// commentText keeps a value on one line and unable to close a block comment.
// U+2028 and U+2029 end a JavaScript line comment too.
var commentText = strings.NewReplacer(
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
	"\u2028", " ",
	"\u2029", " ",
	"*/", "* /",
)

var templateFuncs = template.FuncMap{
	"text":    htmlText.Replace,
	"comment": commentText.Replace,
}
