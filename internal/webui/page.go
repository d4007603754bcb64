package webui

// indexHTML is the single-page upload front end. It posts the export to
// /generate and hands the returned markdown to /report-html or /report-pdf.
const indexHTML = `<!doctype html>
<html lang="zh-Hant">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>InBody 報告產生器</title>
<style>
body{font-family:"Noto Sans TC",system-ui,sans-serif;max-width:860px;margin:2rem auto;padding:0 1rem;color:#1c1917;}
h1{font-size:1.4rem;}
fieldset{border:1px solid #d6d3d1;border-radius:8px;padding:1rem;margin-bottom:1rem;}
button{padding:0.5rem 1.2rem;border:0;border-radius:6px;background:#0f766e;color:#fff;cursor:pointer;}
button:disabled{background:#a8a29e;}
#notice{color:#b45309;margin:0.5rem 0;}
#error{color:#b91c1c;margin:0.5rem 0;}
pre{background:#f5f5f4;border:1px solid #e7e5e4;border-radius:8px;padding:1rem;white-space:pre-wrap;}
table{border-collapse:collapse;font-size:0.85rem;}
td,th{border:1px solid #d6d3d1;padding:0.25rem 0.5rem;}
</style>
</head>
<body>
<h1>InBody 報告產生器</h1>
<form id="form">
  <fieldset>
    <legend>匯出檔</legend>
    <input type="file" name="export" accept=".csv,.json" required>
    <label><input type="checkbox" name="llm" value="1"> 啟用個人化分析</label>
  </fieldset>
  <button type="submit">產生報告</button>
  <button type="button" id="html" disabled>HTML 預覽</button>
  <button type="button" id="pdf" disabled>下載 PDF</button>
</form>
<p id="notice"></p>
<p id="error"></p>
<h2>報告</h2>
<pre id="report"></pre>
<script>
const form = document.getElementById('form');
let markdown = '';
form.addEventListener('submit', async (ev) => {
  ev.preventDefault();
  document.getElementById('error').textContent = '';
  const resp = await fetch('/generate', {method: 'POST', body: new FormData(form)});
  const data = await resp.json();
  if (!resp.ok) { document.getElementById('error').textContent = data.error || '處理失敗'; return; }
  markdown = data.report_markdown;
  document.getElementById('report').textContent = markdown;
  document.getElementById('notice').textContent = data.notice || '';
  document.getElementById('html').disabled = false;
  document.getElementById('pdf').disabled = false;
});
document.getElementById('html').addEventListener('click', async () => {
  const resp = await fetch('/report-html', {method: 'POST', body: markdown});
  const page = await resp.text();
  const win = window.open('', '_blank');
  win.document.write(page);
  win.document.close();
});
document.getElementById('pdf').addEventListener('click', async () => {
  const resp = await fetch('/report-pdf', {method: 'POST', body: markdown});
  if (!resp.ok) { document.getElementById('error').textContent = 'PDF 轉檔失敗'; return; }
  const blob = await resp.blob();
  const a = document.createElement('a');
  a.href = URL.createObjectURL(blob);
  a.download = 'inbody_report.pdf';
  a.click();
});
</script>
</body>
</html>`
