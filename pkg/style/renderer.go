package style

import "fmt"

// DescriptorLine renders a stored watch as "attribute -> handler" for
// list output.
func DescriptorLine(attribute, handler string) string {
	return ListItemStyle.Render(
		fmt.Sprintf("%s %s %s",
			AttributeStyle.Render(attribute),
			MutedStyle.Render("->"),
			HandlerStyle.Render(handler)))
}

// OutcomeLine renders one object's reactivation result.
func OutcomeLine(object string, activated int, err error) string {
	if err != nil {
		return ListItemStyle.Render(
			fmt.Sprintf("%s %s", ObjectStyle.Render(object), ErrorStyle.Render(err.Error())))
	}
	return ListItemStyle.Render(
		fmt.Sprintf("%s %s", ObjectStyle.Render(object),
			SuccessStyle.Render(fmt.Sprintf("%d event(s) active", activated))))
}
