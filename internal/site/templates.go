package site

import (
	"html/template"
	"strings"

	"github.com/elisdimitrova/psysite/internal/ui"
)

var templateFuncs = template.FuncMap{
	"join":   strings.Join,
	"reveal": revealClass,
}

// revealClass is the class list of a block under the scroll-triggered
// reveal. Blocks start Hidden; script.js plays Entering and Visible once
// they scroll into view.
func revealClass() string {
	return "reveal reveal-" + ui.Hidden.String()
}

// pageTemplate is the landing page. Every interactive element is a plain
// link or form first; script.js layers the in-place behaviour on top.
const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Site.Language}}" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .Open}}{{.Open.Title}} | {{end}}{{.Site.Title}}</title>
  <meta name="description" content="{{.Site.Author.Name}} - {{.Site.Author.Role}}">
  <link rel="stylesheet" href="/style.css">
</head>
<body class="{{if .ScrollLocked}}scroll-locked{{end}}"
  data-progress-threshold="{{.Settings.ProgressThreshold}}"
  data-back-to-top-threshold="{{.Settings.BackToTopThreshold}}"
  data-section-threshold="{{.Settings.SectionThreshold}}"
  data-filter-offset="{{.Settings.FilterScrollOffset}}"
  data-wobble-ms="{{.Settings.WobbleMS}}"
  data-reveal-ms="{{.Settings.RevealMS}}"
  {{- if .Settings.LiveReload}} data-livereload="{{.Settings.LiveReload}}"{{end}}>
  <div class="progress-bar{{if .Chrome.ProgressVisible}} visible{{end}}" id="progress-bar" style="width: 0%"></div>

  <header class="site-header">
    <a class="brand" href="/">{{.Site.Title}}</a>
    <nav class="socials">
      {{range .Socials}}<a href="{{.Href}}" target="{{.Target}}" rel="{{.Rel}}" class="icon icon-{{.Icon}}">{{.Label}}</a>{{end}}
    </nav>
    <a class="theme-toggle" id="theme-toggle" href="{{.ThemeHref}}" aria-label="Смяна на темата">{{if eq .Theme "dark"}}☀{{else}}☾{{end}}</a>
    <a class="menu-toggle" id="menu-toggle" href="{{.MenuHref}}" aria-label="Меню">☰</a>
  </header>

  {{if .MenuOpen}}
  <div class="mobile-menu" id="mobile-menu" data-close="{{.MenuCloseHref}}">
    <a class="modal-close" href="{{.MenuCloseHref}}" aria-label="Затвори">×</a>
    <nav>
      {{range .Sidebar}}<a href="{{.Href}}" class="icon-{{.Icon}}">{{.Label}}</a>{{end}}
      {{range .Socials}}<a href="{{.Href}}" target="{{.Target}}" rel="{{.Rel}}">{{.Label}}</a>{{end}}
    </nav>
  </div>
  {{end}}

  <nav class="sidebar" id="sidebar">
    {{range .Sidebar}}<a href="{{.Href}}" data-section="{{slice .Href 1}}" class="sidebar-link icon-{{.Icon}}{{if .Active}} active{{end}}">{{.Label}}</a>{{end}}
  </nav>

  <main>
    <section id="about" class="section hero">
      <div class="{{reveal}}" data-reveal>
      <div class="author-card">
        <a href="{{.AvatarHref}}" class="avatar-link" data-modal="avatar">{{template "image" .Avatar}}</a>
        <h2>{{.Site.Author.Name}}</h2>
        <p class="muted">{{.Site.Author.Role}}</p>
      </div>
      <p class="lead">Аз съм <strong>{{.Profile.Tagline}}</strong> с над 10 години опит.</p>
      </div>

      <form class="card form" id="consultation" action="/forms/consultation" method="post">
        {{if eq .Sent "consultation"}}<p class="form-ok">Благодарим ви! Ще се свържем с вас скоро.</p>{{end}}
        {{if eq .Error "consultation"}}<p class="form-error">Моля, попълнете име, валиден имейл и съобщение.</p>{{end}}
        <input name="name" placeholder="Вашето име" required>
        <input name="email" type="email" placeholder="вашият@имейл.com" required>
        <input name="phone" type="tel" placeholder="Телефонен номер">
        <select name="service">
          {{range .Profile.Offerings}}<option value="{{.Value}}">{{.Label}}</option>{{end}}
        </select>
        <textarea name="message" placeholder="Опишете накратко вашето запитване..." required></textarea>
        <button type="submit">Изпрати</button>
      </form>

      <div class="card giveaway" id="giveaway">
        <h3>{{.Profile.Giveaway.Title}}</h3>
        {{if .Giveaway.Visible}}
        <div class="reveal reveal-{{.Giveaway.Phase}}" id="giveaway-success" data-reset-ms="{{.Giveaway.ResetMS}}">
          <p><strong>{{.Profile.Giveaway.Success}}</strong></p>
          <p>{{.Profile.Giveaway.Detail}}</p>
        </div>
        {{else}}
        {{if eq .Error "giveaway"}}<p class="form-error">Моля, въведете валиден имейл адрес.</p>{{end}}
        <form action="/forms/giveaway" method="post">
          <input name="email" type="email" placeholder="Вашият имейл адрес" required>
          <button type="submit">Изтегли</button>
        </form>
        {{end}}
      </div>

      <div class="{{reveal}}" data-reveal>
      <div class="bio">
        {{range .Profile.Bio}}<p>{{.}}</p>{{end}}
      </div>

      <h3>Професионален път</h3>
      <ol class="timeline">
        {{range .Profile.Timeline}}<li class="icon-{{.Icon}}"><span class="year">{{.Year}}</span> <strong>{{.Title}}</strong> <span class="muted">{{.Description}}</span></li>{{end}}
      </ol>

      {{range .Profile.Skills}}
      <h4>{{.Title}}</h4>
      <ul class="chips">{{range .Skills}}<li>{{.}}</li>{{end}}</ul>
      {{end}}

      {{if .Site.CVPath}}
      <h4>Изтеглете CV</h4>
      <a class="button" href="{{.Site.CVPath}}" download>Автобиография (PDF)</a>
      {{end}}
      </div>
    </section>

    <section id="books" class="section">
      <header class="{{reveal}}" data-reveal>
        <h2>Книги</h2>
        <h3>Моите публикации</h3>
      </header>
      {{template "listing" .Books}}
      <div class="cta {{reveal}}" data-reveal>
        <h3>Нуждаете се от персонализирани препоръки за четене?</h3>
        <a class="button" href="#contact">Свържете се с мен</a>
      </div>
    </section>

    <section id="services" class="section">
      <header class="{{reveal}}" data-reveal><h2>Услуги</h2></header>
      {{template "listing" .Services}}
      <div class="cta {{reveal}}" data-reveal>
        <h3>Нуждаете се от персонализирана услуга?</h3>
        <a class="button" href="#contact">Свържете се с мен</a>
      </div>
    </section>

    <section id="blog" class="section">
      <header class="{{reveal}}" data-reveal>
        <h2>Блог</h2>
        <h3>Мисли и идеи</h3>
        <p class="muted">В моя блог споделям размисли, практически съвети и професионални наблюдения от психологическата практика.</p>
      </header>
      {{template "listing" .Blog}}
      <div class="cta {{reveal}}" data-reveal id="newsletter">
        <h3>Абонирайте се за нови публикации</h3>
        {{if eq .Sent "newsletter"}}<p class="form-ok">Благодарим ви за абонамента!</p>{{end}}
        {{if eq .Error "newsletter"}}<p class="form-error">Моля, въведете валиден имейл адрес.</p>{{end}}
        <form action="/forms/newsletter" method="post">
          <input name="email" type="email" placeholder="Вашият имейл адрес" required>
          <button type="submit">Абонирай се</button>
        </form>
      </div>
    </section>

    <section id="contact" class="section">
      <div class="{{reveal}}" data-reveal>
      <h2>Контакти</h2>
      <ul class="contact">
        {{if .Site.Email}}<li>Имейл: <a href="mailto:{{.Site.Email}}">{{.Site.Email}}</a></li>{{end}}
        {{if .Site.Phone}}<li>Телефон: <a href="tel:{{.Site.Phone}}">{{.Site.Phone}}</a></li>{{end}}
      </ul>
      <h4>Социални мрежи</h4>
      <nav class="socials">
        {{range .Socials}}<a href="{{.Href}}" target="{{.Target}}" rel="{{.Rel}}">{{.Label}}</a>{{end}}
      </nav>
      </div>
    </section>
  </main>

  <footer class="site-footer">© {{.Site.Author.Name}}</footer>

  <a class="back-to-top{{if .Chrome.BackToTopVisible}} visible{{end}}" id="back-to-top" href="#about" aria-label="Към началото">↑</a>

  {{with .Open}}{{template "modal" .}}{{end}}

  {{if .AvatarOpen}}
  <div class="modal-backdrop" data-close="{{.CloseHref}}">
    <div class="modal modal-avatar" role="dialog" aria-modal="true" id="modal-avatar">
      <a class="modal-close" href="{{.CloseHref}}" aria-label="Затвори">×</a>
      {{template "image" .Avatar}}
      <h2>{{.Site.Author.Name}}</h2>
      <p class="muted">{{.Site.Author.Role}}</p>
      {{range .Profile.Bio}}<p>{{.}}</p>{{end}}
    </div>
  </div>
  {{end}}

  <script src="/script.js"></script>
</body>
</html>

{{define "image"}}
{{- if .Missing}}<span class="img-fallback" role="img" aria-label="{{.Alt}}">{{.Initials}}</span>
{{- else}}<img src="{{.Src}}" alt="{{.Alt}}" data-initials="{{.Initials}}" loading="lazy">{{end -}}
{{end}}

{{define "listing"}}
<div class="listing" id="listing-{{.Kind}}" data-kind="{{.Kind}}" data-scroll-offset="{{.ScrollOffset}}">
  <h4 class="filter-label">{{if eq (print .Kind) "blog"}}Филтрирайте по тема{{else}}Филтрирайте по категория{{end}}</h4>
  <div class="filters">
    {{range .Categories}}<a href="{{.Href}}" class="filter{{if .Active}} active{{end}}" data-category="{{.Label}}">{{.Label}}</a>{{end}}
  </div>
  <div class="cards">
    {{range .Rendered}}
    <article class="card card-{{.Kind}} {{reveal}}" data-reveal data-categories="{{join .Categories "|"}}"{{if .Hidden}} hidden{{end}}>
      <a href="{{.OpenHref}}" class="card-image">{{template "image" .Image}}</a>
      <div class="card-body">
        {{if .Date}}<p class="muted meta">{{.Date}}{{if .ReadingTime}} · {{.ReadingTime}} мин. четене{{end}}</p>{{end}}
        <h3><a href="{{.OpenHref}}">{{.Title}}</a></h3>
        <p>{{.Description}}</p>
        <ul class="chips">{{range .Tags}}<li>{{.}}</li>{{end}}{{if .MoreTags}}<li class="more">+{{.MoreTags}} още</li>{{end}}</ul>
        <a href="{{.OpenHref}}" class="read-more">{{if eq (print .Kind) "blog"}}Прочети още{{else}}Научи повече{{end}} →</a>
      </div>
    </article>
    {{end}}
  </div>
  <div class="empty"{{if not .Empty}} hidden{{end}}>
    <p>{{.EmptyText}}</p>
    <a href="{{.ResetHref}}" class="button reset" data-category="Всички">Покажи всички</a>
  </div>
</div>
{{end}}

{{define "modal"}}
<div class="modal-backdrop" data-close="{{.CloseHref}}">
  <div class="modal modal-{{.Kind}}" role="dialog" aria-modal="true" aria-labelledby="{{.ID}}-title" id="{{.ID}}">
    <a class="modal-close" href="{{.CloseHref}}" aria-label="Затвори">×</a>
    <div class="modal-image">{{template "image" .Image}}</div>
    <h2 id="{{.ID}}-title">{{.Title}}</h2>
    {{if .Date}}<p class="muted meta">{{.Date}}{{if .Author}} · {{.Author}}{{end}}{{if .ReadingTime}} · {{.ReadingTime}} мин. четене{{end}}</p>{{end}}
    <div class="modal-body">{{.Body}}</div>
    {{if .Facts}}
    <h3>{{if eq (print .Kind) "books"}}Детайли за книгата{{else}}Информация{{end}}</h3>
    <dl class="facts">{{range .Facts}}<dt>{{.Label}}</dt><dd>{{.Value}}</dd>{{end}}</dl>
    {{end}}
    {{if .Links}}<div class="actions">{{range .Links}}<a class="button icon-{{.Icon}}" href="{{.Href}}" target="{{.Target}}" rel="{{.Rel}}">{{.Label}}</a>{{end}}</div>{{end}}
    {{if .Share}}
    <h4>Споделете статията</h4>
    <div class="share">{{range .Share}}<a href="{{.URL}}" target="_blank" rel="noopener noreferrer" class="share-{{.Network}}">{{.Label}}</a>{{end}}</div>
    {{end}}
    {{if and .Tags (eq (print .Kind) "blog")}}
    <h3>Свързани теми</h3>
    {{end}}
    {{if .Tags}}<ul class="chips">{{range .Tags}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </div>
</div>
{{end}}
`
