// Package sample holds a minimal-style file, shop.go, and its adapter,
// wrapper_shop.go. The wrapper tests regenerate the adapter and compare it.
package sample
