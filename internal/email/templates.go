package email

import "fmt"

func welcomeText(firstName string) string {
	return fmt.Sprintf(
		"Hi %s,\n\nWelcome to LocalGigs! Your account is ready.\n\n"+
			"Post a job or browse open gigs right from the app.\n\n"+
			"The LocalGigs team", firstName)
}

func welcomeHTML(firstName string) string {
	return fmt.Sprintf(
		`<h2>Hi %s,</h2>
<p>Welcome to LocalGigs! Your account is ready.</p>
<p>Post a job or browse open gigs right from the app.</p>
<p>The LocalGigs team</p>`, firstName)
}
