package checkout

import (
	"errors"
	"testing"

	"islet-durians/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var resolved = model.Resolution{Price: "RM85", Size: "1kg", URL: "https://buy.stripe.com/bJe00keoUcaWaA70qD1Jm09"}

func TestDialog_HappyPath(t *testing.T) {
	d, err := Open(Dialog{}, "Musang King", model.Resolution{})
	require.NoError(t, err)
	assert.Equal(t, StateOpenUnresolved, d.State)

	d, err = Select(d, resolved)
	require.NoError(t, err)
	assert.Equal(t, StateOpenResolved, d.State)
	assert.Equal(t, "Musang King", d.Product)

	d, err = Proceed(d, model.Navigation{URL: resolved.URL})
	require.NoError(t, err)
	assert.Equal(t, StateSubmitting, d.State)
	assert.Equal(t, resolved.URL, d.PaymentURL)
	assert.False(t, d.Fallback)

	d, err = Complete(d, nil)
	require.NoError(t, err)
	assert.Equal(t, StateClosed, d.State)
	assert.Equal(t, NoticeRedirecting, d.Notice)
}

func TestDialog_FailedNavigationKeepsDialogOpen(t *testing.T) {
	d, err := Open(Dialog{}, "Musang King", resolved)
	require.NoError(t, err)

	d, err = Proceed(d, model.Navigation{URL: resolved.URL})
	require.NoError(t, err)

	d, err = Complete(d, errors.New("popup blocked"))
	require.NoError(t, err)
	assert.Equal(t, StateOpenResolved, d.State)
	assert.Equal(t, ErrorRetry, d.Error)
	assert.Empty(t, d.PaymentURL)
	assert.Equal(t, resolved, d.Selection)

	// The user can retry straight away.
	d, err = Proceed(d, model.Navigation{URL: resolved.URL})
	require.NoError(t, err)
	assert.Equal(t, StateSubmitting, d.State)
	assert.Empty(t, d.Error)
}

func TestDialog_UnresolvedProceedsWithFallback(t *testing.T) {
	d, err := Open(Dialog{}, "Capri", model.Resolution{})
	require.NoError(t, err)

	nav := OpenPaymentLink(d.Selection.URL, DefaultFallbackURL)
	d, err = Proceed(d, nav)
	require.NoError(t, err)
	assert.Equal(t, StateSubmitting, d.State)
	assert.Equal(t, DefaultFallbackURL, d.PaymentURL)
	assert.True(t, d.Fallback)
}

func TestDialog_InvalidTransitions(t *testing.T) {
	open, _ := Open(Dialog{}, "Capri", resolved)
	submitting, _ := Proceed(open, model.Navigation{URL: resolved.URL})
	closed := Dialog{State: StateClosed}

	tests := []struct {
		name string
		fn   func() (Dialog, error)
	}{
		{"Open while open", func() (Dialog, error) { return Open(open, "Capri", resolved) }},
		{"Open while submitting", func() (Dialog, error) { return Open(submitting, "Capri", resolved) }},
		{"Select while closed", func() (Dialog, error) { return Select(closed, resolved) }},
		{"Select while submitting", func() (Dialog, error) { return Select(submitting, resolved) }},
		{"Proceed while closed", func() (Dialog, error) { return Proceed(closed, model.Navigation{}) }},
		{"Proceed while submitting", func() (Dialog, error) { return Proceed(submitting, model.Navigation{}) }},
		{"Complete while open", func() (Dialog, error) { return Complete(open, nil) }},
		{"Complete while closed", func() (Dialog, error) { return Complete(closed, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			assert.ErrorIs(t, err, model.ErrInvalidTransition)
		})
	}
}

func TestDialog_TransitionsDoNotMutateInput(t *testing.T) {
	open, err := Open(Dialog{}, "Capri", model.Resolution{})
	require.NoError(t, err)
	before := open

	_, err = Select(open, resolved)
	require.NoError(t, err)
	_, err = Proceed(open, model.Navigation{URL: resolved.URL})
	require.NoError(t, err)

	assert.Equal(t, before, open)
}

func TestDialog_Close(t *testing.T) {
	open, _ := Open(Dialog{}, "Capri", resolved)
	submitting, _ := Proceed(open, model.Navigation{URL: resolved.URL})

	for _, d := range []Dialog{{}, open, submitting} {
		assert.Equal(t, Dialog{State: StateClosed}, Close(d))
	}
}

func TestReconcile(t *testing.T) {
	forged := model.Resolution{Price: "RM1", Size: "1kg", URL: "https://evil.example/pay"}

	tests := []struct {
		name     string
		dialog   Dialog
		res      model.Resolution
		expected Dialog
	}{
		{
			name:     "Open dialog takes catalogue selection",
			dialog:   Dialog{State: StateOpenResolved, Product: "Musang King", Selection: forged},
			res:      resolved,
			expected: Dialog{State: StateOpenResolved, Product: "Musang King", Selection: resolved},
		},
		{
			name:     "Unknown selection becomes unresolved",
			dialog:   Dialog{State: StateOpenResolved, Product: "Musang King", Selection: forged},
			res:      model.Resolution{},
			expected: Dialog{State: StateOpenUnresolved, Product: "Musang King"},
		},
		{
			name:     "Submitting keeps its state",
			dialog:   Dialog{State: StateSubmitting, Product: "Musang King", Selection: forged, PaymentURL: forged.URL},
			res:      resolved,
			expected: Dialog{State: StateSubmitting, Product: "Musang King", Selection: resolved, PaymentURL: forged.URL},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Reconcile(tt.dialog, tt.res))
		})
	}
}

func TestDialog_ZeroValueIsClosed(t *testing.T) {
	var d Dialog
	assert.False(t, d.IsOpen())
	assert.False(t, Render(d).Visible)

	_, err := Open(d, "Capri", resolved)
	assert.NoError(t, err)
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		dialog   Dialog
		expected View
	}{
		{
			name:   "Resolved sized selection",
			dialog: Dialog{State: StateOpenResolved, Product: "Musang King", Selection: resolved},
			expected: View{
				Visible:     true,
				ProductName: "Musang King",
				PriceText:   "RM85 (1KG)",
				ButtonLabel: "Quick Checkout (RM85)",
			},
		},
		{
			name:   "Unresolved selection",
			dialog: Dialog{State: StateOpenUnresolved, Product: "Capri"},
			expected: View{
				Visible:     true,
				ProductName: "Capri",
				PriceText:   PriceUnavailable,
				ButtonLabel: "Quick Checkout",
			},
		},
		{
			name: "Package selection",
			dialog: Dialog{
				State:     StateOpenResolved,
				Product:   "Durian Buffet",
				Selection: model.Resolution{URL: "https://buy.stripe.com/00w28s94A1wicIfc9l1Jm01"},
			},
			expected: View{
				Visible:     true,
				ProductName: "Durian Buffet",
				PriceText:   PriceUnavailable,
				ButtonLabel: "Quick Checkout",
			},
		},
		{
			name:   "Submitting shows spinner",
			dialog: Dialog{State: StateSubmitting, Product: "Musang King", Selection: resolved, PaymentURL: resolved.URL},
			expected: View{
				Visible:     true,
				ProductName: "Musang King",
				PriceText:   "RM85 (1KG)",
				ButtonLabel: "Quick Checkout (RM85)",
				Spinner:     true,
			},
		},
		{
			name:   "Closing with notice",
			dialog: Dialog{State: StateClosed, Notice: NoticeRedirecting},
			expected: View{
				Closing:     true,
				ProductName: DefaultProduct,
				PriceText:   PriceUnavailable,
				ButtonLabel: "Quick Checkout",
				Notice:      NoticeRedirecting,
			},
		},
		{
			name:   "Failed navigation",
			dialog: Dialog{State: StateOpenResolved, Product: "Musang King", Selection: resolved, Error: ErrorRetry},
			expected: View{
				Visible:     true,
				ProductName: "Musang King",
				PriceText:   "RM85 (1KG)",
				ButtonLabel: "Quick Checkout (RM85)",
				Error:       ErrorRetry,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.dialog))
		})
	}
}
