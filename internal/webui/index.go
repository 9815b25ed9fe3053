package webui

const defaultIndexHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>vidprompt</title>
  <style>
    body { font-family: "Segoe UI", sans-serif; margin: 0; background: #09090b; color: #fafafa; }
    .wrap { max-width: 1100px; margin: 0 auto; padding: 20px; display: grid; grid-template-columns: 1fr 1fr; gap: 16px; }
    .panel { border: 1px solid #27272a; border-radius: 8px; background: rgba(24,24,27,.4); padding: 16px; }
    h2 { font-size: 14px; margin: 0 0 12px; }
    label { display: block; font-size: 12px; color: #d4d4d8; margin: 10px 0 4px; }
    input, select, textarea { width: 100%; box-sizing: border-box; background: #09090b; color: #fff; border: 1px solid #27272a; border-radius: 6px; padding: 8px; }
    .formats button { padding: 4px 8px; font-size: 12px; border: 0; border-radius: 4px; background: #27272a; color: #d4d4d8; cursor: pointer; }
    .formats button.active { background: #fff; color: #000; }
    .head { display: flex; justify-content: space-between; align-items: center; }
    pre { background: #09090b; border: 1px solid #27272a; border-radius: 8px; padding: 16px; min-height: 200px; white-space: pre-wrap; font-size: 13px; }
    #copy { margin-top: 8px; padding: 6px 12px; border: 1px solid #3f3f46; border-radius: 6px; background: #27272a; color: #d4d4d8; cursor: pointer; }
  </style>
</head>
<body>
  <div class="wrap">
    <div class="panel">
      <h2>Core Content</h2>
      <label for="subject">Subject *</label>
      <input id="subject" data-field="subject" placeholder="e.g., A golden retriever puppy" />
      <label for="action">Action *</label>
      <input id="action" data-field="action" placeholder="e.g., running through a meadow" />
      <label for="location">Location *</label>
      <input id="location" data-field="location" placeholder="e.g., sunlit countryside field" />
      <h2 style="margin-top:16px">Cinematics</h2>
      <label>Camera Movement</label>
      <select data-field="cameraMovement" data-options="cameraMovements" data-placeholder="Select movement"></select>
      <label>Camera Angle</label>
      <select data-field="cameraAngle" data-options="cameraAngles" data-placeholder="Select angle"></select>
      <label>Lighting</label>
      <select data-field="lighting" data-options="lighting" data-placeholder="Select lighting"></select>
      <h2 style="margin-top:16px">Visual Style</h2>
      <label>Style Category</label>
      <select id="category"></select>
      <label>Style</label>
      <select id="style" data-field="visualStyle"></select>
      <h2 style="margin-top:16px">Audio</h2>
      <label for="atmosphere">Atmosphere</label>
      <textarea id="atmosphere" data-field="atmosphere" rows="3" placeholder="e.g., Birds chirping, gentle breeze, distant laughter"></textarea>
    </div>
    <div class="panel">
      <div class="head">
        <h2>Generated Prompt</h2>
        <div class="formats" id="formats"></div>
      </div>
      <pre id="preview">Fill in the form to generate a prompt...</pre>
      <button id="copy">Copy</button>
    </div>
  </div>
  <script>
    const preview = document.getElementById('preview');
    const formats = document.getElementById('formats');
    const category = document.getElementById('category');
    const style = document.getElementById('style');
    let output = '';
    let catalog = null;
    const ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws');
    const send = (msg) => { if (ws.readyState === 1) ws.send(JSON.stringify(msg)); };
    const fill = (sel, values, placeholder) => {
      sel.innerHTML = '';
      const blank = document.createElement('option'); blank.value = ''; blank.textContent = placeholder; sel.appendChild(blank);
      (values || []).forEach(v => { const o = document.createElement('option'); o.value = v; o.textContent = v; sel.appendChild(o); });
    };
    const setFormat = (f) => {
      [...formats.children].forEach(b => b.classList.toggle('active', b.dataset.format === f));
      send({ type: 'format', format: f });
    };
    ws.onmessage = (ev) => {
      const msg = JSON.parse(ev.data);
      if (msg.type === 'hello') { setFormat('markdown'); return; }
      if (msg.type === 'preview') {
        output = msg.output;
        preview.textContent = msg.empty ? 'Fill in the form to generate a prompt...' : msg.output;
      }
    };
    fetch('/api/options').then(r => r.json()).then(opts => {
      catalog = opts;
      document.querySelectorAll('select[data-options]').forEach(sel => fill(sel, opts[sel.dataset.options], sel.dataset.placeholder));
      fill(category, opts.visualStyles.map(c => c.name), 'Select category');
      fill(style, [], 'Select style');
      opts.formats.forEach(f => {
        const b = document.createElement('button'); b.dataset.format = f; b.textContent = f.toUpperCase();
        b.addEventListener('click', () => setFormat(f)); formats.appendChild(b);
      });
    });
    category.addEventListener('change', () => {
      const c = (catalog.visualStyles || []).find(c => c.name === category.value);
      fill(style, c ? c.styles : [], 'Select style');
    });
    document.querySelectorAll('[data-field]').forEach(el => {
      el.addEventListener(el.tagName === 'SELECT' ? 'change' : 'input', () => send({ type: 'edit', field: el.dataset.field, value: el.value }));
    });
    document.getElementById('copy').addEventListener('click', async () => {
      try { await navigator.clipboard.writeText(output); } catch (e) {}
    });
  </script>
</body>
</html>`
