// Package strutil provides string helpers missing from the standard strings package.
//
// All positions and lengths in [Excerpt] are byte based; [Truncate] and [SubstrReplace] work on runes,
// so they never split a multibyte character.
package strutil
