// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package eventtype

// All is the sentinel used by filters and subscriptions to mean "every
// event type". It is not stored in the registry and no wire string
// resolves to it.
var All = Type{raw: "__ALL__", all: true}

// wellKnown interns a standard Matrix event type in the process-wide
// registry during package initialization.
func wellKnown(raw string, class Class) Type {
	return defaultRegistry.FindWithHint(raw, class)
}

// Room state event types.
var (
	RoomCanonicalAlias    = wellKnown("m.room.canonical_alias", State)
	RoomCreate            = wellKnown("m.room.create", State)
	RoomJoinRules         = wellKnown("m.room.join_rules", State)
	RoomMember            = wellKnown("m.room.member", State)
	RoomPowerLevels       = wellKnown("m.room.power_levels", State)
	RoomHistoryVisibility = wellKnown("m.room.history_visibility", State)
	RoomName              = wellKnown("m.room.name", State)
	RoomTopic             = wellKnown("m.room.topic", State)
	RoomAvatar            = wellKnown("m.room.avatar", State)
	RoomPinnedEvents      = wellKnown("m.room.pinned_events", State)
	RoomTombstone         = wellKnown("m.room.tombstone", State)
	RoomEncryption        = wellKnown("m.room.encryption", State)

	SpaceChild  = wellKnown("m.space.child", State)
	SpaceParent = wellKnown("m.space.parent", State)
)

// Timeline message event types.
var (
	RoomRedaction = wellKnown("m.room.redaction", Message)
	RoomMessage   = wellKnown("m.room.message", Message)
	RoomEncrypted = wellKnown("m.room.encrypted", Message)
	Sticker       = wellKnown("m.sticker", Message)
	Reaction      = wellKnown("m.reaction", Message)

	CallInvite       = wellKnown("m.call.invite", Message)
	CallCandidates   = wellKnown("m.call.candidates", Message)
	CallSelectAnswer = wellKnown("m.call.select_answer", Message)
	CallAnswer       = wellKnown("m.call.answer", Message)
	CallHangup       = wellKnown("m.call.hangup", Message)
	CallReject       = wellKnown("m.call.reject", Message)
	CallNegotiate    = wellKnown("m.call.negotiate", Message)
)

// Ephemeral event types.
var (
	Receipt  = wellKnown("m.receipt", Ephemeral)
	Typing   = wellKnown("m.typing", Ephemeral)
	Presence = wellKnown("m.presence", Ephemeral)
)

// Account data event types.
var (
	Direct          = wellKnown("m.direct", AccountData)
	PushRules       = wellKnown("m.push_rules", AccountData)
	Tag             = wellKnown("m.tag", AccountData)
	IgnoredUserList = wellKnown("m.ignored_user_list", AccountData)
)

// To-device event types.
var (
	// ToDeviceEncrypted shares its wire string with RoomEncrypted. The
	// registry keeps the message class for "m.room.encrypted"; to-device
	// processing uses this re-classed value.
	ToDeviceEncrypted = RoomEncrypted.WithClass(ToDevice)

	ToDeviceDummy   = wellKnown("m.dummy", ToDevice)
	RoomKey         = wellKnown("m.room_key", ToDevice)
	RoomKeyWithheld = wellKnown("m.room_key.withheld", ToDevice)
	// OrgMatrixRoomKeyWithheld is the unstable prefix used before
	// m.room_key.withheld was stabilized. Older clients still send it.
	OrgMatrixRoomKeyWithheld = wellKnown("org.matrix.room_key.withheld", ToDevice)
	RoomKeyRequest           = wellKnown("m.room_key_request", ToDevice)
	ForwardedRoomKey         = wellKnown("m.forwarded_room_key", ToDevice)
)
