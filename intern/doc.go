// Package intern canonicalizes equal texts so that repeated content shares a
// single *text.Text.
//
// Texts are bucketed by their 64-bit fingerprint. Distinct texts that share a
// fingerprint are kept side by side in the bucket and resolved with Equals, so
// a collision never merges different content. The pool counts such collisions.
//
//	pool, _ := intern.NewPool()
//	a := pool.InternString("status=ok")
//	b := pool.Intern(text.FromString("status=ok"))
//	// a == b
package intern
