// Package pathkey provides canonical path normalization and wildcard
// generalization for keying navigation handler registries.
//
// Every path used as a registry key or history entry is reduced to a single
// normalized form: exactly one leading slash, no empty segments, and a
// trailing slash unless the path ends in the wildcard marker '*'. Two paths
// are considered equal iff their normalized forms are equal, so lookups can
// never diverge from registrations over trailing-slash or duplicate-slash
// differences.
//
// Wildcard paths end in '*' and match themselves plus every more specific
// descendant. ClosestWildcard computes the least-generalized wildcard
// strictly broader than a given path by dropping one trailing segment:
//
//	/a/b/c/  ->  /a/b/*  ->  /a/*  ->  /*
//
// The universal wildcard "/*" is the terminal of that chain and generalizes
// to itself.
//
// A Keyer is bound to a Locales set. The first locale is the default and is
// never recognized as a path prefix; the remaining locales are optional
// leading segments that NormalizeStripLocale removes, so "/fr/about/" and
// "/about/" key the same handler while "/en/..." (the default) is left
// untouched.
//
// Basic usage:
//
//	locales, err := pathkey.NewLocales("en", "fr")
//	if err != nil {
//		log.Fatal(err)
//	}
//	keyer := pathkey.NewKeyer(locales)
//
//	keyer.Normalize("/about")                  // "/about/"
//	keyer.NormalizeStripLocale("/fr/about/")   // "/about/"
//	keyer.ClosestWildcard("/blog/post-1/")     // "/blog/*"
package pathkey
