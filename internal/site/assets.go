package site

// cssContent is served as /style.css.
const cssContent = `:root {
  --bg: #0f0f10;
  --surface: #1b1b1e;
  --border: #2e2e33;
  --text: #e8e8ea;
  --muted: #a1a1aa;
  --accent: #22c55e;
  --accent-strong: #16a34a;
  --radius: 12px;
}

[data-theme="light"] {
  --bg: #fafafa;
  --surface: #ffffff;
  --border: #e4e4e7;
  --text: #18181b;
  --muted: #52525b;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  background: var(--bg);
  color: var(--text);
  font-family: system-ui, -apple-system, "Segoe UI", Roboto, sans-serif;
  line-height: 1.6;
}

body.scroll-locked { overflow: hidden; }

a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }
.muted { color: var(--muted); }

.progress-bar {
  position: fixed; top: 0; left: 0; height: 3px; z-index: 60;
  background: var(--accent);
  opacity: 0; transition: opacity .2s;
}
.progress-bar.visible { opacity: 1; }

.site-header {
  position: sticky; top: 0; z-index: 40;
  display: flex; align-items: center; gap: 1rem;
  padding: .75rem 1.5rem;
  background: var(--surface); border-bottom: 1px solid var(--border);
}
.brand { font-weight: 700; color: var(--text); margin-right: auto; }
.socials { display: flex; gap: .75rem; flex-wrap: wrap; }
.theme-toggle, .menu-toggle { font-size: 1.25rem; color: var(--text); }
.menu-toggle { display: none; }

.sidebar {
  position: fixed; top: 50%; left: 1rem; transform: translateY(-50%);
  display: flex; flex-direction: column; gap: .5rem; z-index: 30;
}
.sidebar-link { color: var(--muted); padding: .25rem .75rem; border-radius: 999px; }
.sidebar-link.active { color: #fff; background: var(--accent); }

main { max-width: 960px; margin: 0 auto; padding: 0 1.5rem 4rem 8rem; }
.section { padding: 4rem 0; border-bottom: 1px solid var(--border); }
.section h2 { font-size: 2rem; margin: 0 0 .25rem; }

.card {
  background: var(--surface); border: 1px solid var(--border);
  border-radius: var(--radius); padding: 1.25rem; margin: 1rem 0;
}

.author-card { text-align: center; }
.author-card img, .author-card .img-fallback { width: 96px; height: 96px; border-radius: 50%; }

.form input, .form select, .form textarea, .giveaway input, #newsletter input {
  width: 100%; padding: .6rem .8rem; margin: .35rem 0;
  background: var(--bg); color: var(--text);
  border: 1px solid var(--border); border-radius: 8px;
}
button, .button {
  display: inline-block; padding: .6rem 1.2rem; border: 0; border-radius: 8px;
  background: var(--accent); color: #fff; cursor: pointer;
}
button:hover, .button:hover { background: var(--accent-strong); text-decoration: none; }
.form-ok { color: var(--accent); }
.form-error { color: #ef4444; }

.timeline { list-style: none; padding: 0; border-left: 2px solid var(--accent); }
.timeline li { padding: .5rem 1rem; }
.timeline .year { color: var(--accent); font-weight: 700; }

.chips { display: flex; flex-wrap: wrap; gap: .4rem; list-style: none; padding: 0; }
.chips li {
  font-size: .8rem; padding: .15rem .6rem; border-radius: 999px;
  background: var(--bg); border: 1px solid var(--border);
}
.chips li.more { color: var(--accent); }

.filter-label { text-transform: uppercase; letter-spacing: .05em; color: var(--muted); font-size: .8rem; }
.filters { display: flex; flex-wrap: wrap; gap: .5rem; margin-bottom: 1.5rem; }
.filter {
  padding: .3rem .9rem; border-radius: 999px; font-size: .9rem;
  border: 1px solid var(--border); color: var(--text);
}
.filter.active { background: var(--accent); color: #fff; border-color: var(--accent); }

.cards { display: grid; grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); gap: 1.25rem; }
.cards .card { margin: 0; display: flex; flex-direction: column; }
.cards .card[hidden] { display: none; }
.card-image img, .card-image .img-fallback { width: 100%; aspect-ratio: 3 / 2; object-fit: cover; border-radius: 8px; }
.card-books .card-image { transition: transform .6s ease-in-out; }
.card-books .card-image.wobble { transform: rotate(-2deg) scale(1.02); }
.meta { font-size: .85rem; margin: 0; }
.read-more { margin-top: auto; }

.img-fallback {
  display: inline-flex; align-items: center; justify-content: center;
  background: var(--surface); color: var(--accent);
  font-weight: 600; font-size: 1.5rem;
  border: 1px solid var(--border);
}

.empty { text-align: center; padding: 3rem 0; color: var(--muted); }
.cta { text-align: center; margin-top: 2.5rem; }

.modal-backdrop {
  position: fixed; inset: 0; z-index: 50;
  background: rgba(0, 0, 0, .7);
  display: flex; align-items: center; justify-content: center; padding: 1rem;
}
.modal {
  position: relative; max-width: 760px; width: 100%; max-height: 90vh; overflow-y: auto;
  background: var(--surface); border: 1px solid var(--border);
  border-radius: var(--radius); padding: 2rem;
}
.modal-close { position: absolute; top: .75rem; right: 1rem; font-size: 1.75rem; color: var(--muted); }
.modal-image img, .modal-image .img-fallback { width: 100%; max-height: 320px; object-fit: cover; border-radius: 8px; }
.modal-avatar { text-align: center; max-width: 520px; }
.modal-avatar img, .modal-avatar .img-fallback { width: 160px; height: 160px; border-radius: 50%; }
.facts { display: grid; grid-template-columns: max-content 1fr; gap: .35rem 1rem; }
.facts dt { color: var(--muted); }
.facts dd { margin: 0; }
.actions, .share { display: flex; flex-wrap: wrap; gap: .5rem; margin: 1rem 0; }

.mobile-menu {
  position: fixed; inset: 0; z-index: 55; background: var(--surface); padding: 4rem 2rem;
}
.mobile-menu nav { display: flex; flex-direction: column; gap: 1rem; font-size: 1.25rem; }

.back-to-top {
  position: fixed; right: 1.5rem; bottom: 1.5rem; z-index: 45;
  width: 44px; height: 44px; border-radius: 50%;
  display: flex; align-items: center; justify-content: center;
  background: var(--accent); color: #fff;
  opacity: 0; pointer-events: none; transition: opacity .2s;
}
.back-to-top.visible { opacity: 1; pointer-events: auto; }

.reveal { transition: opacity var(--reveal-ms, 500ms), transform var(--reveal-ms, 500ms); }
.js .reveal-hidden, .reveal-exiting { opacity: 0; transform: translateY(8px); }
.reveal-entering, .reveal-visible { opacity: 1; transform: none; }

.site-footer { text-align: center; padding: 2rem; color: var(--muted); }

@media (max-width: 768px) {
  .sidebar, .site-header .socials { display: none; }
  .menu-toggle { display: inline; }
  main { padding: 0 1rem 3rem; }
}
`

// jsContent is served as /script.js. It mirrors the server-side models:
// category filtering, modal close paths, the scroll chrome, topmost
// section highlighting and the image fallback.
const jsContent = `(function() {
  'use strict';

  var body = document.body;
  var num = function(name, fallback) {
    var v = parseFloat(body.dataset[name]);
    return isNaN(v) ? fallback : v;
  };
  var settings = {
    progress: num('progressThreshold', 100),
    backToTop: num('backToTopThreshold', 300),
    section: num('sectionThreshold', 0.3),
    filterOffset: num('filterOffset', 100),
    wobble: num('wobbleMs', 3000),
    reveal: num('revealMs', 500)
  };
  body.style.setProperty('--reveal-ms', settings.reveal + 'ms');
  document.documentElement.classList.add('js');

  // Reveal: hidden -> entering when a block scrolls into view, then
  // entering -> visible after one animation.
  function reveal(el) {
    if (!el.classList.contains('reveal-hidden')) return;
    el.classList.replace('reveal-hidden', 'reveal-entering');
    setTimeout(function() {
      el.classList.replace('reveal-entering', 'reveal-visible');
    }, settings.reveal);
  }
  var revealing = document.querySelectorAll('[data-reveal]');
  if ('IntersectionObserver' in window) {
    var revealer = new IntersectionObserver(function(entries) {
      entries.forEach(function(entry) {
        if (!entry.isIntersecting) return;
        reveal(entry.target);
        revealer.unobserve(entry.target);
      });
    }, { threshold: 0.1 });
    revealing.forEach(function(el) { revealer.observe(el); });
  } else {
    revealing.forEach(reveal);
  }

  // Theme
  var toggle = document.getElementById('theme-toggle');
  if (toggle) {
    toggle.addEventListener('click', function(e) {
      e.preventDefault();
      var root = document.documentElement;
      var next = root.getAttribute('data-theme') === 'light' ? 'dark' : 'light';
      root.setAttribute('data-theme', next);
      document.cookie = 'theme=' + next + '; path=/; max-age=31536000; samesite=lax';
      toggle.textContent = next === 'dark' ? '☀' : '☾';
    });
  }

  // Scroll chrome
  var bar = document.getElementById('progress-bar');
  var top = document.getElementById('back-to-top');
  function onScroll() {
    var y = window.scrollY;
    var scrollable = document.documentElement.scrollHeight - window.innerHeight;
    var fraction = scrollable > 0 ? Math.min(1, Math.max(0, y / scrollable)) : 0;
    if (bar) {
      bar.style.width = (fraction * 100) + '%';
      bar.classList.toggle('visible', y > settings.progress);
    }
    if (top) top.classList.toggle('visible', y > settings.backToTop);
  }
  window.addEventListener('scroll', onScroll, { passive: true });
  onScroll();
  if (top) {
    top.addEventListener('click', function(e) {
      e.preventDefault();
      window.scrollTo({ top: 0, behavior: 'smooth' });
    });
  }

  // Sidebar: the topmost intersecting section wins; nothing qualifying
  // keeps the previous selection.
  var links = Array.prototype.slice.call(document.querySelectorAll('.sidebar-link'));
  var order = links.map(function(a) { return a.dataset.section; });
  var ratios = {};
  var active = null;
  function settle() {
    var next = null;
    for (var i = 0; i < order.length; i++) {
      if ((ratios[order[i]] || 0) >= settings.section) { next = order[i]; break; }
    }
    if (next === null || next === active) return;
    active = next;
    links.forEach(function(a) { a.classList.toggle('active', a.dataset.section === active); });
  }
  if ('IntersectionObserver' in window && order.length) {
    var observer = new IntersectionObserver(function(entries) {
      entries.forEach(function(entry) {
        if (entry.isIntersecting) ratios[entry.target.id] = entry.intersectionRatio;
        else delete ratios[entry.target.id];
      });
      settle();
    }, { threshold: [0, settings.section, 0.6, 1] });
    order.forEach(function(id) {
      var el = document.getElementById(id);
      if (el) observer.observe(el);
    });
  }

  // Modals: close control, Escape and a press outside the content all go
  // to the URL without the modal.
  function openOverlay() {
    return document.querySelector('.modal-backdrop, .mobile-menu');
  }
  document.addEventListener('keydown', function(e) {
    var overlay = openOverlay();
    if (overlay && (e.key === 'Escape' || e.key === 'Esc')) {
      window.location.href = overlay.dataset.close;
    }
  });
  document.querySelectorAll('.modal-backdrop').forEach(function(backdrop) {
    backdrop.addEventListener('mousedown', function(e) {
      var content = backdrop.querySelector('.modal');
      if (content && !content.contains(e.target)) {
        window.location.href = backdrop.dataset.close;
      }
    });
  });

  // Image fallback
  function fallback(img) {
    var span = document.createElement('span');
    span.className = 'img-fallback';
    span.setAttribute('role', 'img');
    span.setAttribute('aria-label', img.alt);
    span.textContent = img.dataset.initials || '?';
    img.replaceWith(span);
  }
  document.querySelectorAll('img[data-initials]').forEach(function(img) {
    if (img.complete && img.naturalWidth === 0) fallback(img);
    else img.addEventListener('error', function() { fallback(img); });
  });

  // Category filters
  function applyFilter(listing, category, scroll) {
    var all = category === 'Всички' || category === '';
    var shown = 0;
    listing.querySelectorAll('.card').forEach(function(card) {
      var cats = (card.dataset.categories || '').split('|');
      var match = all || cats.indexOf(category) >= 0;
      card.hidden = !match;
      if (match) shown++;
    });
    listing.querySelectorAll('.filter').forEach(function(btn) {
      btn.classList.toggle('active', btn.dataset.category === (all ? 'Всички' : category));
    });
    var empty = listing.querySelector('.empty');
    if (empty) empty.hidden = shown > 0;
    if (scroll) {
      var offset = parseFloat(listing.dataset.scrollOffset) || settings.filterOffset;
      var rect = listing.getBoundingClientRect();
      window.scrollTo({ top: rect.top + window.pageYOffset - offset, behavior: 'smooth' });
    }
  }
  var params = new URLSearchParams(window.location.search);
  document.querySelectorAll('.listing').forEach(function(listing) {
    var kind = listing.dataset.kind;
    listing.querySelectorAll('.filter, .reset').forEach(function(btn) {
      btn.addEventListener('click', function(e) {
        e.preventDefault();
        var category = btn.dataset.category;
        var q = new URLSearchParams(window.location.search);
        if (category === 'Всички') q.delete(kind); else q.set(kind, category);
        history.replaceState(null, '', '?' + q.toString() + '#' + kind);
        applyFilter(listing, category, true);
      });
    });
    if (params.has(kind)) applyFilter(listing, params.get(kind), false);
  });

  // Book illustration wobble
  var wobbling = document.querySelectorAll('.card-books .card-image');
  if (wobbling.length && settings.wobble > 0) {
    var on = false;
    setInterval(function() {
      on = !on;
      wobbling.forEach(function(el) { el.classList.toggle('wobble', on); });
    }, settings.wobble);
  }

  // Giveaway success: entering -> visible, then exit and reset the form.
  var success = document.getElementById('giveaway-success');
  if (success) {
    var reset = parseInt(success.dataset.resetMs, 10) || 5000;
    setTimeout(function() {
      success.classList.replace('reveal-entering', 'reveal-visible');
    }, settings.reveal);
    setTimeout(function() {
      success.classList.replace('reveal-visible', 'reveal-exiting');
      setTimeout(function() {
        var q = new URLSearchParams(window.location.search);
        q.delete('sent');
        var search = q.toString();
        window.location.replace(window.location.pathname + (search ? '?' + search : '') + '#giveaway');
      }, settings.reveal);
    }, settings.reveal + reset);
  }

  // Live reload
  if (body.dataset.livereload) {
    var proto = window.location.protocol === 'https:' ? 'wss://' : 'ws://';
    var ws = new WebSocket(proto + window.location.host + body.dataset.livereload);
    ws.onmessage = function(e) {
      if (e.data === 'reload') window.location.reload();
    };
  }
})();
`
