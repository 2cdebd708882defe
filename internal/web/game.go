package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func GamePage(gameID string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>AI Pictionary</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body data-game-id="`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, templ.EscapeString(gameID)); err != nil {
			return err
		}
		_, err := io.WriteString(w, `">
    <main class="shell">
      <header class="bar">
        <a href="/">AI Pictionary</a>
        <span id="round-label"></span>
      </header>

      <section class="panel host-only" id="host-panel" hidden>
        <form id="theme-form">
          <input id="theme-input" type="text" placeholder="Theme (e.g. Animals)" maxlength="140"/>
          <button type="submit">Set theme</button>
        </form>
        <button id="new-round">New round</button>
        <button id="reveal">Reveal answer</button>
      </section>

      <section class="panel">
        <div id="drawing"></div>
        <p id="answer" class="answer"></p>
        <p id="winner" class="winner"></p>
      </section>

      <section class="panel">
        <form id="guess-form">
          <input id="guess-input" type="text" placeholder="Your guess" maxlength="60" required/>
          <button type="submit">Guess</button>
        </form>
        <ul id="guesses"></ul>
      </section>

      <section class="panel">
        <h2>Scores</h2>
        <ol id="scores"></ol>
      </section>
    </main>
    <script src="/static/game.js"></script>
  </body>
</html>`)
		return err
	})
}
