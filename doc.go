// Package nlattr implements the netlink attribute (NLA) wire format:
// type-length-value records aligned to 4-byte boundaries, nestable to
// arbitrary depth.
//
// The encoder and decoder are very low level, and do not attach any
// meaning to attribute ids or payloads. They are the runtime support
// layer for generated protocol bindings, which know for a given
// message schema which attributes exist, which of them nest, and how
// to interpret their payloads. [Iter] additionally gives those
// bindings byte-offset-localized error reporting via [ErrorContext].
package nlattr
