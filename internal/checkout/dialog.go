package checkout

import (
	"strings"

	"islet-durians/internal/model"
)

// State is the lifecycle state of the quick-checkout dialog.
type State string

const (
	StateClosed         State = "closed"
	StateOpenUnresolved State = "open_unresolved"
	StateOpenResolved   State = "open_resolved"
	StateSubmitting     State = "submitting"
)

// User-facing dialog messages.
const (
	NoticeRedirecting = "Redirecting to secure payment portal..."
	ErrorRetry        = "Unable to open payment portal. Please try again."
	PriceUnavailable  = "Price unavailable"
	DefaultProduct    = "Product"
)

// Dialog is the complete state of one checkout dialog. It is a plain value:
// transitions return a new Dialog and never modify their input.
type Dialog struct {
	State      State            `json:"state"`
	Product    string           `json:"product,omitempty"`
	Selection  model.Resolution `json:"selection"`
	PaymentURL string           `json:"paymentUrl,omitempty"`
	Fallback   bool             `json:"fallback,omitempty"`
	Notice     string           `json:"notice,omitempty"`
	Error      string           `json:"error,omitempty"`
}

func (d Dialog) current() State {
	if d.State == "" {
		return StateClosed
	}
	return d.State
}

// IsOpen reports whether the dialog accepts selections.
func (d Dialog) IsOpen() bool {
	s := d.current()
	return s == StateOpenUnresolved || s == StateOpenResolved
}

func openState(res model.Resolution) State {
	if res.Resolved() {
		return StateOpenResolved
	}
	return StateOpenUnresolved
}

// Open shows the dialog for product with an initial resolution.
func Open(d Dialog, product string, res model.Resolution) (Dialog, error) {
	if d.current() != StateClosed {
		return d, model.ErrInvalidTransition
	}
	return Dialog{
		State:     openState(res),
		Product:   product,
		Selection: res,
	}, nil
}

// Select replaces the selection of an open dialog.
func Select(d Dialog, res model.Resolution) (Dialog, error) {
	if !d.IsOpen() {
		return d, model.ErrInvalidTransition
	}
	return Dialog{
		State:     openState(res),
		Product:   d.Product,
		Selection: res,
	}, nil
}

// Proceed starts submitting with the chosen navigation. An unresolved dialog
// may proceed; nav then carries the fallback link.
func Proceed(d Dialog, nav model.Navigation) (Dialog, error) {
	if !d.IsOpen() {
		return d, model.ErrInvalidTransition
	}
	next := d
	next.State = StateSubmitting
	next.PaymentURL = nav.URL
	next.Fallback = nav.Fallback
	next.Notice = ""
	next.Error = ""
	return next, nil
}

// Complete finishes a submission. A successful navigation closes the dialog
// with a redirect notice. A failed one keeps it open with a retry message so
// the user can try again.
func Complete(d Dialog, navErr error) (Dialog, error) {
	if d.current() != StateSubmitting {
		return d, model.ErrInvalidTransition
	}
	if navErr != nil {
		return Dialog{
			State:     openState(d.Selection),
			Product:   d.Product,
			Selection: d.Selection,
			Error:     ErrorRetry,
		}, nil
	}
	return Dialog{
		State:  StateClosed,
		Notice: NoticeRedirecting,
	}, nil
}

// Reconcile replaces the selection carried by d with res, the selection
// looked up in the catalogue. An open dialog moves to the open state that
// matches res. Dialogs arriving from clients pass through here so that
// prices and links always come from the catalogue.
func Reconcile(d Dialog, res model.Resolution) Dialog {
	next := d
	next.Selection = res
	if next.IsOpen() {
		next.State = openState(res)
	}
	return next
}

// Close dismisses the dialog from any state.
func Close(d Dialog) Dialog {
	return Dialog{State: StateClosed}
}

// View is what the presentation layer renders for a Dialog.
type View struct {
	Visible     bool   `json:"visible"`
	Closing     bool   `json:"closing"`
	ProductName string `json:"productName"`
	PriceText   string `json:"priceText"`
	ButtonLabel string `json:"buttonLabel"`
	Spinner     bool   `json:"spinner"`
	Notice      string `json:"notice,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Render derives the view of d. A closed dialog that carries a notice is
// Closing: the notice stays on screen until the close delay elapses.
func Render(d Dialog) View {
	s := d.current()

	v := View{
		Visible:     s != StateClosed,
		Closing:     s == StateClosed && d.Notice != "",
		ProductName: d.Product,
		PriceText:   priceText(d.Selection),
		ButtonLabel: ButtonLabel(d.Selection),
		Spinner:     s == StateSubmitting,
		Notice:      d.Notice,
		Error:       d.Error,
	}
	if v.ProductName == "" {
		v.ProductName = DefaultProduct
	}
	return v
}

func priceText(res model.Resolution) string {
	text := res.Price
	if text == "" {
		text = PriceUnavailable
	}
	if res.Size != "" {
		text += " (" + strings.ToUpper(res.Size) + ")"
	}
	return text
}
