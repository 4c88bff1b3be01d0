package screen

import "github.com/marcus/pdp/pkg/screen/modal"

// createInfoModal builds the additional information dialog
func (m *Model) createInfoModal() *modal.Modal {
	return modal.New(m.Product.InfoTitle,
		modal.WithWidth(50),
		modal.WithHints(m.Labels.ModalHints),
	).
		AddSection(modal.Text(m.Product.InfoText)).
		AddSection(modal.Spacer()).
		AddSection(modal.Buttons(
			modal.Btn(" "+m.Labels.InfoOK+" ", "close"),
		))
}
