// Package app defines the app definition consumed by the generator and the
// closed enumeration domains (Network, AppTag, AppAction, GroupType) its
// fields draw from. Generated Go definitions import this package and register
// themselves with the default registry from an init function.
package app
