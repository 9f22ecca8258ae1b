package cli

import "fmt"

type ProfileCmd struct {
	Name   string `help:"Set the display name."`
	Avatar string `help:"Set the avatar key."`
	Theme  string `help:"Set the UI theme."`
}

func (c *ProfileCmd) Run(ctx *Context) error {
	changed := false
	if c.Name != "" {
		if err := ctx.Prefs.SetUserName(c.Name); err != nil {
			return err
		}
		changed = true
	}
	if c.Avatar != "" {
		if err := ctx.Prefs.SetUserAvatar(c.Avatar); err != nil {
			return err
		}
		changed = true
	}
	if c.Theme != "" {
		if err := ctx.Prefs.SetTheme(c.Theme); err != nil {
			return err
		}
		changed = true
	}

	if changed {
		fmt.Println("Profile updated.")
		return nil
	}

	fmt.Printf("Name:   %s\n", orUnset(ctx.Prefs.UserName()))
	fmt.Printf("Avatar: %s\n", orUnset(ctx.Prefs.UserAvatar()))
	fmt.Printf("Theme:  %s\n", orUnset(ctx.Prefs.Theme()))
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
