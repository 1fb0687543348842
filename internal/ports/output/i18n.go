package output

// T looks up the tools' own console messages for a locale.
type T interface {
	// T renders the message identified by key. data fills template
	// placeholders and may be nil. Unknown keys render as the key itself.
	T(locale, key string, data map[string]any) string
}
