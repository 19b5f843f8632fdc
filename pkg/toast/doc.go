// Package toast provides transient notifications for preview widgets.
//
// Toasts are not part of the widget tree. They are dispatched as a custom
// event through an Emitter (a live session in the web host, the status line
// in the terminal playground), so a toast never causes a re-render.
//
// # Client-Side Handler
//
// The thin client re-dispatches the event on window:
//
//	window.addEventListener("cosmos:toast", (e) => {
//	    const { level, message, title } = e.detail;
//	    showToast(level, message);
//	});
//
// # Server-Side Usage
//
//	toast.Success(session, "Código copiado al portapapeles")
//
// A Notifier adapts an Emitter to the harness notification hook:
//
//	preview.WithNotifier(toast.Notifier{Emitter: session})
package toast
