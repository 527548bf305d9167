package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconDesktop = "\uf108" // desktop
	IconImage   = "\uf1c5" // image file
	IconLock    = "\uf023" // lock
	IconPlay    = "\uf04b" // play
	IconStop    = "\uf04d" // stop
	IconCursor  = "\uf054" // chevron right

	IconCheckboxEmpty   = "\uf096" // unchecked
	IconCheckboxChecked = "\uf046" // checked
)
