// Package hoststring is a thin platform-selecting facade over posixstr and
// winstr: callers pick a Platform once and get the same Encode/Decode shape
// regardless of which host string convention it maps to underneath.
package hoststring
