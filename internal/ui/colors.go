package ui

// ColorPrimary returns the primary accent escape code of the active theme.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the secondary escape code.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorSuccess returns the success escape code.
func ColorSuccess() string { return GetCurrentTheme().Success }

// ColorWarning returns the warning escape code.
func ColorWarning() string { return GetCurrentTheme().Warning }

// ColorError returns the error escape code.
func ColorError() string { return GetCurrentTheme().Error }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorReset returns the reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }
