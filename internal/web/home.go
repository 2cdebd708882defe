package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func Home() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>AI Pictionary</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body>
    <main class="shell">
      <header class="hero">
        <span class="tag">AI Pictionary</span>
        <h1>Guess what the AI drew.</h1>
        <p>Host a game, pick a theme, and let the AI sketch the answer.</p>
      </header>

      <section class="panel">
        <h2>Sign in</h2>
        <form id="signin-form">
          <input id="signin-name" type="text" placeholder="Your name" maxlength="64" required/>
          <button type="submit">Sign in</button>
        </form>
        <p id="signin-status"></p>
      </section>

      <section class="panel">
        <h2>Create a game</h2>
        <button id="create-game">New game</button>
        <p class="hint">Share the game link with your players.</p>
      </section>

      <section class="panel">
        <h2>Gallery</h2>
        <p><a href="/gallery">Browse images from past rounds</a></p>
      </section>
    </main>
    <script>
      document.getElementById('signin-form').addEventListener('submit', async (e) => {
        e.preventDefault();
        const name = document.getElementById('signin-name').value;
        const res = await fetch('/api/signin', {
          method: 'POST',
          headers: {'Content-Type': 'application/json'},
          body: JSON.stringify({name}),
        });
        const status = document.getElementById('signin-status');
        if (res.ok) {
          const data = await res.json();
          status.textContent = 'Signed in as ' + data.name;
        } else {
          status.textContent = 'Sign in failed';
        }
      });
      document.getElementById('create-game').addEventListener('click', async () => {
        const res = await fetch('/api/games', {method: 'POST'});
        if (res.ok) {
          const data = await res.json();
          window.location = '/games/' + data.game_id;
        }
      });
    </script>
  </body>
</html>`)
		return err
	})
}
