// wx is a command-line tool for bulk Webex Calling administration.
package main

import "github.com/dannywalker-afni-com/Wx/cmd"

func main() {
	cmd.Execute()
}
