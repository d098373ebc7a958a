package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

const monitorPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>padbridge monitor</title>
<style>
body { font-family: monospace; background: #1e1e1e; color: #d4d4d4; margin: 2em; }
h1 { font-size: 1.2em; }
select { background: #2d2d2d; color: #d4d4d4; border: 1px solid #555; padding: 2px 6px; }
table { border-collapse: collapse; margin-top: 1em; }
td, th { border: 1px solid #444; padding: 4px 10px; text-align: left; }
.pressed { background: #2e7d32; }
#status { color: #999; margin-left: 1em; }
</style>
</head>
<body>
<h1>padbridge
<select id="controller">
<option value="0">Controller 0</option>
<option value="1">Controller 1</option>
<option value="2">Controller 2</option>
<option value="3">Controller 3</option>
</select>
<span id="status">connecting</span>
</h1>
<table id="axes"><tbody></tbody></table>
<table id="buttons"><tbody><tr id="buttonrow"></tr></tbody></table>
<div>POV: <span id="pov">-</span></div>
<script>
(function() {
	var ws = null;
	var state = { axes: [], axisNames: [], buttons: [], povAngle: -1 };

	function render() {
		var body = document.querySelector("#axes tbody");
		body.innerHTML = "";
		for (var i = 0; i < state.axes.length; i++) {
			var tr = document.createElement("tr");
			tr.innerHTML = "<th>" + (state.axisNames[i] || i) + "</th><td>" + state.axes[i] + "</td>";
			body.appendChild(tr);
		}
		var row = document.getElementById("buttonrow");
		row.innerHTML = "";
		for (var b = 0; b < state.buttons.length; b++) {
			var td = document.createElement("td");
			td.textContent = "B" + (b + 1);
			if (state.buttons[b]) td.className = "pressed";
			row.appendChild(td);
		}
		document.getElementById("pov").textContent =
			state.povAngle < 0 ? "neutral" : (state.povAngle / 100) + "°";
	}

	function applyEvent(ev) {
		var name = ev.element;
		if (name === "POV") { state.povAngle = ev.value; return; }
		var ai = state.axisNames.indexOf(name);
		if (ai >= 0) { state.axes[ai] = ev.value; return; }
		var m = /^B(\d+)$/.exec(name);
		if (m) state.buttons[+m[1] - 1] = ev.value !== 0;
	}

	function connect() {
		ws = new WebSocket("ws://" + location.host + "/ws");
		ws.onopen = function() {
			document.getElementById("status").textContent = "connected";
			var sel = document.getElementById("controller");
			ws.send(JSON.stringify({ type: "select_controller", controller: +sel.value }));
		};
		ws.onclose = function() {
			document.getElementById("status").textContent = "disconnected";
			setTimeout(connect, 1000);
		};
		ws.onmessage = function(e) {
			var msg = JSON.parse(e.data);
			if (msg.type === "snapshot" && msg.data) {
				state = msg.data;
				render();
			} else if (msg.type === "events" && msg.events) {
				msg.events.forEach(applyEvent);
				render();
			}
		};
	}

	document.getElementById("controller").addEventListener("change", function() {
		if (ws && ws.readyState === WebSocket.OPEN) {
			ws.send(JSON.stringify({ type: "select_controller", controller: +this.value }));
		}
	});

	connect();
})();
</script>
</body>
</html>`

var minifiedPage struct {
	once sync.Once
	data []byte
}

// handleMonitorPage serves the built-in monitor page, minified once on
// first request.
func handleMonitorPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		minifiedPage.once.Do(func() {
			m := minify.New()
			m.AddFunc("text/html", html.Minify)
			m.AddFunc("text/css", css.Minify)
			m.AddFunc("application/javascript", js.Minify)
			out, err := m.String("text/html", monitorPage)
			if err != nil {
				log.Printf("Minifying monitor page failed: %v", err)
				out = monitorPage
			}
			minifiedPage.data = []byte(out)
		})
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(minifiedPage.data)
	}
}
