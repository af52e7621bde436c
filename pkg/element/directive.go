package element

import "strings"

// directiveKind is the closed set of behaviors an attribute key can select.
// Keys are resolved to a kind exactly once, at construction time; there is no
// runtime string dispatch after that.
type directiveKind int

const (
	plainAttr directiveKind = iota
	eventDirective
	subscribeDirective
	bindDirective
	childrenDirective
)

type directive struct {
	kind directiveKind
	// key is the event name, property name, or literal attribute name,
	// depending on kind.
	key string
}

// childrenKey is the special subscribe: key selecting incremental child
// rendering instead of a property subscription.
const childrenKey = "children"

// parseDirective resolves an attribute key. Unknown namespaces and malformed
// keys fall through to the plain-attribute arm — the whole key, colon
// included, becomes a literal attribute — so dispatch is total over all
// string keys.
func parseDirective(key string) directive {
	ns, rest, ok := strings.Cut(key, ":")
	if !ok || rest == "" {
		return directive{kind: plainAttr, key: key}
	}
	switch ns {
	case "on":
		return directive{kind: eventDirective, key: rest}
	case "subscribe":
		if rest == childrenKey {
			return directive{kind: childrenDirective, key: rest}
		}
		return directive{kind: subscribeDirective, key: rest}
	case "bind":
		return directive{kind: bindDirective, key: rest}
	}
	return directive{kind: plainAttr, key: key}
}
