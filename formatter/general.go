package formatter

// generalIssueTemplate renders an issue followed by its notes and the
// source lines after the fix. Every helper returns whole lines.
const generalIssueTemplate = `
{{- header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn -}}
{{- snippet .SnippetLines .StartLine .EndLine .MaxLineNumWidth .CommonIndent .Padding -}}
{{- underlineAndMessage .Message .Padding .StartLine .EndLine .StartColumn .EndColumn .SnippetLines .CommonIndent -}}
{{- range .Details}}{{note $.Padding .}}{{end -}}
{{- suggestion .SuggestionLines .SuggestionStart .Padding .MaxLineNumWidth}}
`
