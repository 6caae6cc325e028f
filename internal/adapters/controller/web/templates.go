package web

import (
	"html/template"
	"net/url"
	"strconv"
)

const (
	pageTemplateName    = "configurator"
	confirmTemplateName = "confirm"
	webAppScript        = "https://telegram.org/js/telegram-web-app.js"
)

func parseTemplates() *template.Template {
	templates := template.Must(template.New(pageTemplateName).Funcs(templateFuncs).Parse(pageTemplate))
	return template.Must(templates.New(confirmTemplateName).Parse(confirmTemplate))
}

var templateFuncs = template.FuncMap{
	"hidden": func(state url.Values, skip ...string) map[string]string {
		out := make(map[string]string, len(state))
		for key := range state {
			out[key] = state.Get(key)
		}
		for _, key := range skip {
			delete(out, key)
		}
		return out
	},
	"webAppScript": func() string {
		return webAppScript
	},
	"px": func(v float64) string {
		return strconv.FormatFloat(v, 'f', 2, 64) + "px"
	},
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Generation settings</title>
<script src="{{ webAppScript }}"></script>
<style>
body { background: #141414; color: #e6e6e6; font-family: sans-serif; margin: 16px; }
.row { display: flex; align-items: center; gap: 12px; margin-bottom: 20px; }
.frame { width: 30px; height: 30px; display: flex; align-items: center; justify-content: center; }
.aspect { border: 2px solid #e6e6e6; }
.tiles { display: grid; grid-template-columns: 12px 12px; gap: 3px; }
.tile { width: 12px; height: 12px; background: #3c3c3c; }
.tile.active { background: #e6e6e6; }
.circle { width: 28px; height: 28px; border-radius: 50%; display: inline-block; position: relative; }
.delete { position: absolute; top: -8px; right: -8px; color: #e6e6e6; text-decoration: none; }
.confirm { width: 100%; padding: 12px; font-size: 16px; }
</style>
</head>
<body>
<form method="get" action="/configurator">
	{{- range $key, $value := hidden .State "size" "count" }}
	<input type="hidden" name="{{ $key }}" value="{{ $value }}">
	{{- end }}
	<div class="row">
		<div class="frame"><div class="aspect" style="width: {{ px .BoxWidth }}; height: {{ px .BoxHeight }};"></div></div>
		<input type="range" name="size" min="0" max="14" value="{{ .State.Get "size" }}" onchange="this.form.submit()">
		<span>{{ .AspectLabel }}</span>
	</div>
	<div class="row">
		<div class="tiles">
			{{- range .Tiles }}
			<div class="tile{{ if . }} active{{ end }}"></div>
			{{- end }}
		</div>
		<input type="range" name="count" min="1" max="4" value="{{ .State.Get "count" }}" onchange="this.form.submit()">
		<span>{{ .State.Get "count" }}</span>
	</div>
</form>

<div class="row">
	{{- range $index, $hex := .Swatches }}
	<span class="circle" style="background-color: #{{ $hex }};"><a class="delete" href="{{ $.ActionURL "remove" $index }}">&times;</a></span>
	{{- end }}
	{{- if .CanAddColor }}
	<form method="get" action="/configurator">
		{{- range $key, $value := hidden .State }}
		<input type="hidden" name="{{ $key }}" value="{{ $value }}">
		{{- end }}
		<input type="color" name="add" onchange="this.form.submit()">
	</form>
	{{- end }}
	<a href="{{ .ActionURL "clear" "all" }}">reset</a>
</div>

<div class="row">
	{{- if .HasBackground }}
	<span class="circle" style="background-color: #{{ .Background }};"><a class="delete" href="{{ .ActionURL "clearBg" 1 }}">&times;</a></span>
	{{- else }}
	<form method="get" action="/configurator">
		{{- range $key, $value := hidden .State }}
		<input type="hidden" name="{{ $key }}" value="{{ $value }}">
		{{- end }}
		<input type="color" name="bg" onchange="this.form.submit()">
	</form>
	{{- end }}
</div>

{{- if .Ready }}
<form id="confirm" method="get" action="/configurator/confirm" data-label="{{ .ConfirmLabel }}">
	{{- range $key, $value := hidden .State }}
	<input type="hidden" name="{{ $key }}" value="{{ $value }}">
	{{- end }}
	<button class="confirm" type="submit">{{ .ConfirmLabel }}</button>
</form>
<script>
(function () {
	var tg = window.Telegram && window.Telegram.WebApp;
	if (!tg || !tg.initData) {
		return;
	}
	var form = document.getElementById("confirm");
	form.querySelector("button").style.display = "none";
	tg.ready();
	tg.MainButton.setText(form.dataset.label);
	tg.MainButton.onClick(function () { form.submit(); });
	tg.MainButton.show();
})();
</script>
{{- end }}
</body>
</html>
`

const confirmTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Generation settings</title>
<script src="{{ webAppScript }}"></script>
<style>
body { background: #141414; color: #e6e6e6; font-family: sans-serif; margin: 16px; }
a { color: #e6e6e6; }
</style>
</head>
<body data-link="{{ .Redirect }}">
<p>Settings confirmed. <a id="open" href="{{ .Redirect }}">Back to the bot</a></p>
<script>
(function () {
	var link = document.body.dataset.link;
	var tg = window.Telegram && window.Telegram.WebApp;
	if (!tg || !tg.initData) {
		window.location.replace(link);
		return;
	}
	tg.openTelegramLink(link);
	{{- if .Closed }}
	tg.close();
	{{- end }}
})();
</script>
</body>
</html>
`
