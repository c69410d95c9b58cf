package cmd

import (
	_ "als-keeper/cmd/command"
	_ "als-keeper/cmd/resolve"
	_ "als-keeper/cmd/root"
	_ "als-keeper/cmd/run"
	_ "als-keeper/cmd/server"
	_ "als-keeper/cmd/versions"
)
