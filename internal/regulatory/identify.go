package regulatory

// IdentifyForms returns the codes of every known form whose title and defining
// phrase occur in text, in registry order.
func (r *Registry) IdentifyForms(text string) []string {
	found := make([]string, 0, len(r.Forms))
	for _, form := range r.Forms {
		if form.Pattern.MatchString(text) {
			found = append(found, form.Code)
		}
	}
	return found
}

func containsForm(forms []string, code string) bool {
	for _, f := range forms {
		if f == code {
			return true
		}
	}
	return false
}
