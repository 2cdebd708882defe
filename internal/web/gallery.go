package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func GalleryPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Gallery - AI Pictionary</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body>
    <main class="shell">
      <header class="bar">
        <a href="/">AI Pictionary</a>
        <h1>Gallery</h1>
      </header>
      <section class="grid" id="gallery"></section>
      <button id="load-more" hidden>Load more</button>
    </main>
    <script>
      let cursor = '';
      const gallery = document.getElementById('gallery');
      const loadMore = document.getElementById('load-more');

      async function loadPage() {
        const params = new URLSearchParams();
        if (cursor) params.set('cursor', cursor);
        const res = await fetch('/api/images?' + params.toString());
        if (!res.ok) return;
        const page = await res.json();
        for (const image of page.images) {
          const card = document.createElement('figure');
          const img = document.createElement('img');
          img.src = image.image;
          img.alt = image.answer;
          const caption = document.createElement('figcaption');
          caption.textContent = image.answer + ' (' + image.theme + ')';
          card.appendChild(img);
          card.appendChild(caption);
          gallery.appendChild(card);
        }
        cursor = page.next_cursor || '';
        loadMore.hidden = !page.has_more;
      }

      loadMore.addEventListener('click', loadPage);
      loadPage();
    </script>
  </body>
</html>`)
		return err
	})
}
