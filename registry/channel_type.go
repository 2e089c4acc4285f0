package registry

// ChannelType restricts which channels a Channel option offers.
type ChannelType uint8

const (
	ChannelGuildText          ChannelType = 0
	ChannelDM                 ChannelType = 1
	ChannelGuildVoice         ChannelType = 2
	ChannelGroupDM            ChannelType = 3
	ChannelGuildCategory      ChannelType = 4
	ChannelGuildAnnouncement  ChannelType = 5
	ChannelAnnouncementThread ChannelType = 10 // 6-9 were never assigned or are retired
	ChannelPublicThread       ChannelType = 11
	ChannelPrivateThread      ChannelType = 12
	ChannelGuildStageVoice    ChannelType = 13
	ChannelGuildDirectory     ChannelType = 14
	ChannelGuildForum         ChannelType = 15
	ChannelGuildMedia         ChannelType = 16
)

var channelTypes = table[ChannelType]{
	{ChannelGuildText, "guild_text"},
	{ChannelDM, "dm"},
	{ChannelGuildVoice, "guild_voice"},
	{ChannelGroupDM, "group_dm"},
	{ChannelGuildCategory, "guild_category"},
	{ChannelGuildAnnouncement, "guild_announcement"},
	{ChannelAnnouncementThread, "announcement_thread"},
	{ChannelPublicThread, "public_thread"},
	{ChannelPrivateThread, "private_thread"},
	{ChannelGuildStageVoice, "guild_stage_voice"},
	{ChannelGuildDirectory, "guild_directory"},
	{ChannelGuildForum, "guild_forum"},
	{ChannelGuildMedia, "guild_media"},
}

// Code returns the wire code of t.
func (t ChannelType) Code() uint8 { return uint8(t) }

// Valid reports whether t is a declared variant.
func (t ChannelType) Valid() bool {
	_, ok := channelTypes.name(t)
	return ok
}

func (t ChannelType) String() string { return channelTypes.str("ChannelType", t) }

// ChannelTypeFromCode is the reverse of Code.
func ChannelTypeFromCode(code uint8) (ChannelType, bool) { return channelTypes.fromCode(code) }

// ParseChannelType looks up a channel type by its snake_case name, e.g. "guild_text".
func ParseChannelType(name string) (ChannelType, error) {
	return channelTypes.parse("channel type", name)
}

// AllChannelTypes returns every channel type in code order.
func AllChannelTypes() []ChannelType { return channelTypes.all() }
