package web

import "html/template"

const headHTML = `<!doctype html>
<html lang="{{.Locale}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.T "site.name"}}</title>
</head>
<body>
<nav>
  <a href="/{{.Locale}}"><strong>{{.T "site.name"}}</strong></a>
  <a href="/{{.Locale}}">{{.T "nav.home"}}</a>
  <a href="/{{.Locale}}/booking">{{.T "nav.booking"}}</a>
  <a href="/{{.AltLocale}}{{.CleanPath}}">{{.AltLocale}}</a>
</nav>
`

const footHTML = `</body>
</html>
`

const homeHTML = headHTML + `<main>
  <h1>{{.T "home.title"}}</h1>
  <p>{{.T "home.subtitle"}}</p>
  <p>
    {{.T "booking.availableFor"}} <strong>{{.T "booking.cantonGeneva"}}</strong>
    {{.T "booking.and"}} <strong>{{.T "booking.cantonVaud"}}</strong>
  </p>
  <a href="/{{.Locale}}/booking">{{.T "home.cta"}}</a>
</main>
` + footHTML

const bookingHTML = headHTML + `<main>
  <h1>{{.T "booking.title"}}</h1>
  <p>
    {{.T "booking.availableFor"}} <strong>{{.T "booking.cantonGeneva"}}</strong>
    {{.T "booking.and"}} <strong>{{.T "booking.cantonVaud"}}</strong>
  </p>
  <form id="booking-form">
    <label>{{.T "booking.firstName"}} <input name="firstName" required></label>
    <label>{{.T "booking.lastName"}} <input name="lastName" required></label>
    <label>{{.T "booking.company"}} <input name="company"></label>
    <label>{{.T "booking.city"}} <input name="city" required></label>
    <label>{{.T "booking.postalCode"}} <input name="postalCode" required></label>
    <label>{{.T "booking.address"}} <input name="address" required></label>
    <label>{{.T "booking.email"}} <input name="email" type="email" required></label>
    <label>{{.T "booking.phone"}} <input name="phone" type="tel" required></label>
    <fieldset>
      <legend>{{.T "booking.reason"}}</legend>
      <label><input type="checkbox" name="reason" value="Moving"> {{.T "booking.reason.Moving"}}</label>
      <label><input type="checkbox" name="reason" value="Renovation"> {{.T "booking.reason.Renovation"}}</label>
      <label><input type="checkbox" name="reason" value="Delivery"> {{.T "booking.reason.Delivery"}}</label>
      <label><input type="checkbox" name="reason" value="Other"> {{.T "booking.reason.Other"}}</label>
    </fieldset>
    <label>{{.T "booking.numberOfSpots"}} <input name="numberOfSpots" type="number" min="1" required></label>
    <label>{{.T "booking.requiredLength"}} <input name="requiredLength" type="number" min="0" step="0.5"></label>
    <label>{{.T "booking.startDate"}} <input name="startDate" type="date" required></label>
    <label>{{.T "booking.startTime"}} <input name="startTime" type="time" required></label>
    <label>{{.T "booking.endDate"}} <input name="endDate" type="date" required></label>
    <label>{{.T "booking.endTime"}} <input name="endTime" type="time" required></label>
    <label>{{.T "booking.vehicleDescription"}} <textarea name="vehicleDescription" required></textarea></label>
    <button type="submit">{{.T "booking.submit"}}</button>
  </form>
  <script>
  (function () {
    var form = document.getElementById("booking-form");
    var submitting = false;
    form.addEventListener("submit", function (e) {
      e.preventDefault();
      if (submitting) return;
      var payload = { locale: "{{.Locale}}", reason: [] };
      form.querySelectorAll("input, textarea").forEach(function (el) {
        if (el.type === "checkbox") {
          if (el.checked) payload.reason.push(el.value);
          return;
        }
        payload[el.name] = el.value;
      });
      var missing = ["firstName", "lastName", "city", "postalCode", "address",
        "email", "phone", "numberOfSpots", "startDate", "startTime",
        "endDate", "endTime", "vehicleDescription"].some(function (f) {
        return !(payload[f] || "").trim();
      });
      if (missing) {
        alert({{.T "booking.requiredFields"}});
        return;
      }
      submitting = true;
      fetch("/api/booking", {
        method: "POST",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify(payload)
      }).then(function (res) {
        if (!res.ok) throw new Error("HTTP " + res.status);
        alert({{.T "booking.sentAlert"}});
        window.location.replace("/{{.Locale}}");
      }).catch(function () {
        alert({{.T "booking.errorGeneric"}});
        submitting = false;
      });
    });
  })();
  </script>
</main>
` + footHTML

var (
	homeTmpl    = template.Must(template.New("home").Parse(homeHTML))
	bookingTmpl = template.Must(template.New("booking").Parse(bookingHTML))
)
