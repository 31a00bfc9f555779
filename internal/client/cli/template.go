package cli

const leadDetailsTemplate = `
=== Lead Details ===

Name:     {{.Name}}
ID:       {{.ID}}
Status:   {{.Status}}
Phone:    {{.Phone}}
{{- if .Email }}
Email:    {{.Email}}
{{- end}}
{{- if .Location }}
Location: {{.Location}}
{{- end}}
{{- if .Interest }}
Interest: {{.Interest}}
{{- end}}
{{- if .AssignedTo }}
Assigned: {{.AssignedTo}}
{{- end}}
{{- if .Temperature }}
Temp:     {{.Temperature}}
{{- end}}
{{- if .Value }}
Value:    {{.Value}}
{{- end}}
{{- if .FollowUpDate }}
Followup: {{.FollowUpDate}}
{{- end}}
{{- if .LostReason }}
Lost:     {{.LostReason}}
{{- end}}
{{- if .Notes }}
Notes:    {{.Notes}}
{{- end}}
Created:  {{.CreatedAt}}
Updated:  {{.UpdatedAt}}
`
