package render

// Shared subsection blocks. Every block omits itself entirely when its
// backing field or collection is empty, so no layout ever prints an empty
// heading.
const sharedBlocks = `
{{define "contact"}}
<ul class="contact">
  {{if .Email}}<li><strong>Email:</strong> {{.Email}}</li>{{end}}
  {{if .Phone}}<li><strong>Phone:</strong> {{.Phone}}</li>{{end}}
  {{if .Location}}<li><strong>Location:</strong> {{.Location}}</li>{{end}}
  {{if .Website}}<li><strong>Website:</strong> {{.Website}}</li>{{end}}
</ul>
{{end}}

{{define "contact-inline"}}
<p class="contact-inline">
  {{if .Email}}<span>{{.Email}}</span>{{end}}
  {{if .Phone}}<span>{{.Phone}}</span>{{end}}
  {{if .Location}}<span>{{.Location}}</span>{{end}}
  {{if .Website}}<span>{{.Website}}</span>{{end}}
</p>
{{end}}

{{define "summary"}}
{{if .Summary}}
<section class="summary">
  <h2 style="color: {{.ThemeColor}}">Professional Summary</h2>
  <p>{{.Summary}}</p>
</section>
{{end}}
{{end}}

{{define "experience"}}
{{if .Experiences}}
<section class="experience">
  <h2 style="color: {{.ThemeColor}}">Experience</h2>
  {{range .Experiences}}
  <div class="entry">
    <div class="entry-head">
      <h3>{{.Position}}</h3>
      <span class="dates">{{.StartDate}} - {{.EndDate}}</span>
    </div>
    <p class="org">{{.Company}}</p>
    {{if .Description}}<p>{{.Description}}</p>{{end}}
    {{if .BulletPoints}}
    <ul>
      {{range .BulletPoints}}<li>{{.}}</li>{{end}}
    </ul>
    {{end}}
  </div>
  {{end}}
</section>
{{end}}
{{end}}

{{define "education"}}
{{if .Education}}
<section class="education">
  <h2 style="color: {{.ThemeColor}}">Education</h2>
  {{range .Education}}
  <div class="entry">
    <div class="entry-head">
      <h3>{{.Institution}}</h3>
      <span class="dates">{{.StartDate}} - {{.EndDate}}</span>
    </div>
    <p class="org">{{.Degree}}{{if and .Degree .Field}}, {{end}}{{.Field}}</p>
    {{if .Description}}<p>{{.Description}}</p>{{end}}
  </div>
  {{end}}
</section>
{{end}}
{{end}}

{{define "projects"}}
{{if .Projects}}
<section class="projects">
  <h2 style="color: {{.ThemeColor}}">Projects</h2>
  {{range .Projects}}
  <div class="entry">
    <div class="entry-head">
      <h3>{{.Name}}</h3>
      <span class="dates">{{.StartDate}} - {{.EndDate}}</span>
    </div>
    {{if .Role}}<p class="org">{{.Role}}</p>{{end}}
    {{if .Description}}<p>{{.Description}}</p>{{end}}
    {{if .BulletPoints}}
    <ul>
      {{range .BulletPoints}}<li>{{.}}</li>{{end}}
    </ul>
    {{end}}
    {{if .URL}}<p class="link">{{.URL}}</p>{{end}}
  </div>
  {{end}}
</section>
{{end}}
{{end}}

{{define "skill-bars"}}
{{if .Skills}}
<section class="skills">
  <h2 style="color: {{.ThemeColor}}">Skills</h2>
  {{$color := .ThemeColor}}
  {{range .Skills}}
  <div class="skill">
    <div class="skill-head"><span>{{.Name}}</span><span>{{.Proficiency}}%</span></div>
    <div class="bar"><div class="fill" style="width: {{.Proficiency}}%; background-color: {{$color}}"></div></div>
  </div>
  {{end}}
</section>
{{end}}
{{end}}

{{define "skill-tags"}}
{{if .Skills}}
<section class="skills">
  <h2 style="color: {{.ThemeColor}}">Skills</h2>
  <p class="tags">
    {{range .Skills}}<span class="tag">{{.Name}}</span>{{end}}
  </p>
</section>
{{end}}
{{end}}

{{define "declaration"}}
{{if .Declaration}}
<section class="declaration">
  <h2 style="color: {{.ThemeColor}}">Declaration</h2>
  <p>{{.Declaration}}</p>
</section>
{{end}}
{{end}}
`

// Template A: the only layout that renders the profile image. Header with
// photo, then a single-column body.
const templateA = `
{{define "template-a"}}
<div class="layout layout-a">
  <header class="header" style="background-color: {{.ThemeColor}}; text-align: {{alignCSS .HeaderAlignment}}">
    {{if .ProfileImage}}<img class="profile" src="{{safeURL .ProfileImage}}" alt="">{{end}}
    <h1>{{.Name}}</h1>
    <p class="title">{{.Title}}</p>
    {{template "contact-inline" .}}
  </header>
  <div class="body">
    {{template "summary" .}}
    {{template "experience" .}}
    {{template "projects" .}}
    {{template "education" .}}
    {{template "skill-bars" .}}
    {{template "declaration" .}}
  </div>
</div>
{{end}}
`

// Template B: the default. Colored text-only header and a two-column body,
// contact and skills in the sidebar.
const templateB = `
{{define "template-b"}}
<div class="layout layout-b">
  <header class="header" style="background-color: {{.ThemeColor}}; text-align: {{alignCSS .HeaderAlignment}}">
    <h1>{{.Name}}</h1>
    <p class="title">{{.Title}}</p>
  </header>
  <div class="columns">
    <aside class="sidebar">
      <section>
        <h2 style="color: {{.ThemeColor}}">Contact</h2>
        {{template "contact" .}}
      </section>
      {{template "skill-bars" .}}
    </aside>
    <div class="main">
      {{template "summary" .}}
      {{template "experience" .}}
      {{template "projects" .}}
      {{template "education" .}}
      {{template "declaration" .}}
    </div>
  </div>
</div>
{{end}}
`

// Template C: ATS-friendly. Single column, no color fill, skills as plain
// tags so parsers keep the text.
const templateC = `
{{define "template-c"}}
<div class="layout layout-c">
  <header class="header plain" style="text-align: {{alignCSS .HeaderAlignment}}">
    <h1 style="color: {{.ThemeColor}}">{{.Name}}</h1>
    <p class="title">{{.Title}}</p>
    {{template "contact-inline" .}}
  </header>
  <div class="body">
    {{template "summary" .}}
    {{template "experience" .}}
    {{template "education" .}}
    {{template "projects" .}}
    {{template "skill-tags" .}}
    {{template "declaration" .}}
  </div>
</div>
{{end}}
`

// Template D: plain monochrome variant of C, theme color ignored.
const templateD = `
{{define "template-d"}}
<div class="layout layout-d">
  <header class="header plain" style="text-align: {{alignCSS .HeaderAlignment}}">
    <h1>{{.Name}}</h1>
    <p class="title">{{.Title}}</p>
    {{template "contact" .}}
  </header>
  <div class="body">
    {{template "summary" .}}
    {{template "experience" .}}
    {{template "education" .}}
    {{template "projects" .}}
    {{template "skill-tags" .}}
    {{template "declaration" .}}
  </div>
</div>
{{end}}
`

// documentShell wraps a rendered layout into a printable A4 page. The region
// id is what the export worker selects when printing to PDF.
const documentShell = `
{{define "document"}}<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
  body { margin: 0; padding: 0; font-family: 'Helvetica Neue', Arial, sans-serif; font-size: 10pt; color: #1f2937; }
  .page { width: 794px; min-height: 1122px; margin: 0 auto; background: white; box-sizing: border-box; }
  .header { padding: 32px 40px; color: white; }
  .header.plain { color: #1f2937; border-bottom: 2px solid #e5e7eb; }
  .header h1 { margin: 0 0 4px; font-size: 24pt; }
  .header .title { margin: 0; font-size: 14pt; opacity: 0.9; }
  .header .profile { width: 96px; height: 96px; border-radius: 50%; object-fit: cover; margin-bottom: 12px; }
  .contact-inline span + span::before { content: " \00b7 "; }
  .contact { list-style: none; margin: 0; padding: 0; }
  .contact li { margin-bottom: 6px; }
  .body, .main { padding: 24px 40px; }
  .columns { display: flex; }
  .sidebar { width: 33%; background: #f9fafb; padding: 24px; border-right: 1px solid #e5e7eb; }
  section { margin-bottom: 20px; }
  section h2 { font-size: 13pt; border-bottom: 1px solid #e5e7eb; padding-bottom: 4px; margin: 0 0 10px; }
  .entry { margin-bottom: 14px; }
  .entry-head { display: flex; justify-content: space-between; }
  .entry-head h3 { margin: 0; font-size: 11pt; }
  .dates { color: #6b7280; font-size: 9pt; }
  .org { margin: 2px 0; color: #6b7280; }
  .skill-head { display: flex; justify-content: space-between; margin-bottom: 2px; }
  .bar { width: 100%; height: 6px; background: #e5e7eb; border-radius: 3px; }
  .fill { height: 6px; border-radius: 3px; }
  .tags .tag { display: inline-block; border: 1px solid #d1d5db; border-radius: 4px; padding: 2px 8px; margin: 0 6px 6px 0; }
  .link { color: #2563eb; }
  @page { size: A4; margin: 0; }
</style>
</head>
<body>
<div id="{{.RegionID}}" class="page">
{{.Body}}
</div>
</body>
</html>
{{end}}
`
