package twsort

import "strconv"

// Built-in class order. Utilities are listed in the order the framework emits
// them into its stylesheet; families are expanded from the scales below when
// the package is initialised.

var (
	spacingScale = []string{
		"0", "px", "0.5", "1", "1.5", "2", "2.5", "3", "3.5", "4", "5", "6", "7", "8", "9", "10",
		"11", "12", "14", "16", "20", "24", "28", "32", "36", "40", "44", "48", "52", "56", "60",
		"64", "72", "80", "96",
	}
	fractionScale = []string{
		"1/2", "1/3", "2/3", "1/4", "2/4", "3/4", "1/5", "2/5", "3/5", "4/5",
		"1/6", "2/6", "3/6", "4/6", "5/6", "1/12", "2/12", "3/12", "4/12", "5/12",
		"6/12", "7/12", "8/12", "9/12", "10/12", "11/12",
	}
	opacityScale = []string{"0", "5", "10", "20", "25", "30", "40", "50", "60", "70", "75", "80", "90", "95", "100"}
	colorHues    = []string{"gray", "red", "orange", "yellow", "green", "teal", "blue", "indigo", "purple", "pink"}
	colorShades  = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}
	borderWidths = []string{"-0", "-2", "-4", "-8", ""}
	radiusScale  = []string{"-none", "-sm", "", "-md", "-lg", "-xl", "-2xl", "-3xl", "-full"}
	sides        = []string{"t", "r", "b", "l"}
	corners      = []string{"tl", "tr", "br", "bl"}
	positions    = []string{"bottom", "center", "left", "left-bottom", "left-top", "right", "right-bottom", "right-top", "top"}
	gridSpans    = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}
	durations    = []string{"75", "100", "150", "200", "300", "500", "700", "1000"}
)

type classOrder []string

func (o *classOrder) add(classes ...string) {
	*o = append(*o, classes...)
}

// scale appends prefix+value for every value.
func (o *classOrder) scale(prefix string, values ...[]string) {
	for _, set := range values {
		for _, v := range set {
			*o = append(*o, prefix+v)
		}
	}
}

// negative appends the negated form of a scale, skipping zero and keywords.
func (o *classOrder) negative(prefix string, values []string) {
	for _, v := range values {
		if v == "0" || v == "auto" {
			continue
		}
		*o = append(*o, "-"+prefix+v)
	}
}

func palette() []string {
	colors := []string{"transparent", "current", "black", "white"}
	for _, hue := range colorHues {
		for _, shade := range colorShades {
			colors = append(colors, hue+"-"+shade)
		}
	}
	return colors
}

func numbered(from, to int) []string {
	values := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		values = append(values, strconv.Itoa(i))
	}
	return values
}

func defaultClassOrder() []string {
	var o classOrder
	colors := palette()
	auto := []string{"auto"}

	o.add("container")

	// spacing between children
	o.scale("space-y-", spacingScale)
	o.scale("space-x-", spacingScale)
	o.negative("space-y-", spacingScale)
	o.negative("space-x-", spacingScale)
	o.add("space-y-reverse", "space-x-reverse")
	o.scale("divide-y", borderWidths)
	o.scale("divide-x", borderWidths)
	o.add("divide-y-reverse", "divide-x-reverse")
	o.scale("divide-", colors)
	o.scale("divide-opacity-", opacityScale)
	o.add("divide-solid", "divide-dashed", "divide-dotted", "divide-double", "divide-none")

	o.add("sr-only", "not-sr-only", "appearance-none")

	// backgrounds
	o.add("bg-fixed", "bg-local", "bg-scroll")
	o.add("bg-clip-border", "bg-clip-padding", "bg-clip-content", "bg-clip-text")
	o.scale("bg-", colors)
	o.scale("bg-opacity-", opacityScale)
	o.scale("bg-", positions)
	o.add("bg-repeat", "bg-no-repeat", "bg-repeat-x", "bg-repeat-y", "bg-repeat-round", "bg-repeat-space")
	o.add("bg-auto", "bg-cover", "bg-contain")

	// borders
	o.add("border-collapse", "border-separate")
	o.scale("border-", colors)
	o.scale("border-opacity-", opacityScale)
	o.scale("rounded", radiusScale)
	for _, side := range append(append([]string{}, sides...), corners...) {
		o.scale("rounded-"+side, radiusScale)
	}
	o.add("border-solid", "border-dashed", "border-dotted", "border-double", "border-none")
	o.scale("border", borderWidths)
	for _, side := range sides {
		o.scale("border-"+side, borderWidths)
	}

	o.add("box-border", "box-content")
	o.scale("cursor-", []string{"auto", "default", "pointer", "wait", "text", "move", "help", "not-allowed"})

	// display
	o.add("block", "inline-block", "inline", "flex", "inline-flex", "table", "table-caption",
		"table-cell", "table-column", "table-column-group", "table-footer-group",
		"table-header-group", "table-row-group", "table-row", "flow-root", "grid",
		"inline-grid", "contents", "list-item", "hidden")

	// flexbox
	o.add("flex-row", "flex-row-reverse", "flex-col", "flex-col-reverse")
	o.add("flex-wrap", "flex-wrap-reverse", "flex-nowrap", "flex-no-wrap")
	o.scale("place-items-", []string{"auto", "start", "end", "center", "stretch"})
	o.scale("place-content-", []string{"center", "start", "end", "between", "around", "evenly", "stretch"})
	o.scale("place-self-", []string{"auto", "start", "end", "center", "stretch"})
	o.scale("items-", []string{"start", "end", "center", "baseline", "stretch"})
	o.scale("content-", []string{"center", "start", "end", "between", "around", "evenly"})
	o.scale("self-", []string{"auto", "start", "end", "center", "stretch"})
	o.scale("justify-items-", []string{"auto", "start", "end", "center", "stretch"})
	o.scale("justify-", []string{"start", "end", "center", "between", "around", "evenly"})
	o.scale("justify-self-", []string{"auto", "start", "end", "center", "stretch"})
	o.add("flex-1", "flex-auto", "flex-initial", "flex-none")
	o.add("flex-grow-0", "flex-grow", "flex-shrink-0", "flex-shrink")
	o.add("order-first", "order-last", "order-none")
	o.scale("order-", gridSpans)

	o.add("float-right", "float-left", "float-none", "clearfix")
	o.add("clear-left", "clear-right", "clear-both", "clear-none")

	// fonts
	o.add("font-sans", "font-serif", "font-mono")
	o.scale("font-", []string{"hairline", "thin", "extralight", "light", "normal", "medium", "semibold", "bold", "extrabold", "black"})

	o.scale("h-", spacingScale, auto, fractionScale[:15], []string{"full", "screen"})
	o.scale("text-", []string{"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl", "7xl", "8xl", "9xl"})
	o.scale("leading-", numbered(3, 10), []string{"none", "tight", "snug", "normal", "relaxed", "loose"})
	o.add("list-inside", "list-outside", "list-none", "list-disc", "list-decimal")

	// margin
	for _, m := range []string{"m-", "my-", "mx-", "mt-", "mr-", "mb-", "ml-"} {
		o.scale(m, spacingScale, auto)
	}
	for _, m := range []string{"m-", "my-", "mx-", "mt-", "mr-", "mb-", "ml-"} {
		o.negative(m, spacingScale)
	}

	o.scale("max-h-", spacingScale, []string{"full", "screen"})
	o.scale("max-w-", []string{"0", "none", "xs", "sm", "md", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl", "7xl", "full", "min", "max", "prose", "screen-sm", "screen-md", "screen-lg", "screen-xl", "screen-2xl"})
	o.scale("min-h-", []string{"0", "full", "screen"})
	o.scale("min-w-", []string{"0", "full", "min", "max"})

	o.scale("object-", []string{"contain", "cover", "fill", "none", "scale-down"})
	o.scale("object-", positions)
	o.scale("opacity-", opacityScale)
	o.add("outline-none", "outline-white", "outline-black")

	for _, axis := range []string{"overflow-", "overflow-x-", "overflow-y-"} {
		o.scale(axis, []string{"auto", "hidden", "visible", "scroll"})
	}
	o.add("scrolling-touch", "scrolling-auto")
	for _, axis := range []string{"overscroll-", "overscroll-y-", "overscroll-x-"} {
		o.scale(axis, []string{"auto", "contain", "none"})
	}

	// padding
	for _, p := range []string{"p-", "py-", "px-", "pt-", "pr-", "pb-", "pl-"} {
		o.scale(p, spacingScale)
	}

	o.scale("placeholder-", colors)
	o.scale("placeholder-opacity-", opacityScale)
	o.add("pointer-events-none", "pointer-events-auto")

	// positioning
	o.add("static", "fixed", "absolute", "relative", "sticky")
	insetScale := append([]string{"0", "auto", "px", "full"}, fractionScale[:6]...)
	for _, edge := range []string{"inset-", "inset-y-", "inset-x-", "top-", "right-", "bottom-", "left-"} {
		o.scale(edge, insetScale)
	}
	for _, edge := range []string{"inset-", "inset-y-", "inset-x-", "top-", "right-", "bottom-", "left-"} {
		o.negative(edge, insetScale)
	}
	o.add("resize-none", "resize-y", "resize-x", "resize")

	o.scale("shadow", []string{"-xs", "-sm", "", "-md", "-lg", "-xl", "-2xl", "-inner", "-outline", "-none"})
	o.add("fill-current", "stroke-current", "stroke-0", "stroke-1", "stroke-2")
	o.add("table-auto", "table-fixed")

	// typography
	o.add("text-left", "text-center", "text-right", "text-justify")
	o.scale("text-", colors)
	o.scale("text-opacity-", opacityScale)
	o.add("italic", "not-italic")
	o.add("uppercase", "lowercase", "capitalize", "normal-case")
	o.add("underline", "line-through", "no-underline")
	o.add("antialiased", "subpixel-antialiased")
	o.add("ordinal", "slashed-zero", "lining-nums", "oldstyle-nums", "proportional-nums",
		"tabular-nums", "diagonal-fractions", "stacked-fractions", "normal-nums")
	o.scale("tracking-", []string{"tighter", "tight", "normal", "wide", "wider", "widest"})
	o.scale("select-", []string{"none", "text", "all", "auto"})
	o.scale("align-", []string{"baseline", "top", "middle", "bottom", "text-top", "text-bottom"})
	o.add("visible", "invisible")
	o.scale("whitespace-", []string{"normal", "no-wrap", "nowrap", "pre", "pre-line", "pre-wrap"})
	o.add("break-normal", "break-words", "break-all", "truncate")

	o.scale("w-", spacingScale, auto, fractionScale, []string{"full", "screen", "min", "max"})
	o.scale("z-", []string{"0", "10", "20", "30", "40", "50", "auto"})

	// grid
	o.scale("gap-", spacingScale)
	o.scale("gap-x-", spacingScale)
	o.scale("gap-y-", spacingScale)
	o.scale("col-gap-", spacingScale)
	o.scale("row-gap-", spacingScale)
	o.scale("grid-flow-", []string{"row", "col", "row-dense", "col-dense"})
	o.scale("grid-cols-", gridSpans, []string{"none"})
	o.add("col-auto")
	o.scale("col-span-", gridSpans, []string{"full"})
	o.scale("col-start-", numbered(1, 13), auto)
	o.scale("col-end-", numbered(1, 13), auto)
	o.scale("grid-rows-", numbered(1, 6), []string{"none"})
	o.add("row-auto")
	o.scale("row-span-", numbered(1, 6), []string{"full"})
	o.scale("row-start-", numbered(1, 7), auto)
	o.scale("row-end-", numbered(1, 7), auto)

	// transforms
	o.add("transform", "transform-gpu", "transform-none")
	o.scale("origin-", []string{"center", "top", "top-right", "right", "bottom-right", "bottom", "bottom-left", "left", "top-left"})
	scaleValues := []string{"0", "50", "75", "90", "95", "100", "105", "110", "125", "150"}
	o.scale("scale-", scaleValues)
	o.scale("scale-x-", scaleValues)
	o.scale("scale-y-", scaleValues)
	rotateValues := []string{"0", "1", "2", "3", "6", "12", "45", "90", "180"}
	o.scale("rotate-", rotateValues)
	o.negative("rotate-", rotateValues)
	translateValues := append(append([]string{}, spacingScale...), "1/2", "1/3", "2/3", "1/4", "2/4", "3/4", "full")
	o.scale("translate-x-", translateValues)
	o.scale("translate-y-", translateValues)
	o.negative("translate-x-", translateValues)
	o.negative("translate-y-", translateValues)
	skewValues := []string{"0", "1", "2", "3", "6", "12"}
	o.scale("skew-x-", skewValues)
	o.scale("skew-y-", skewValues)
	o.negative("skew-x-", skewValues)
	o.negative("skew-y-", skewValues)

	// transitions and animation
	o.scale("transition", []string{"-none", "-all", "", "-colors", "-opacity", "-shadow", "-transform"})
	o.scale("ease-", []string{"linear", "in", "out", "in-out"})
	o.scale("duration-", durations)
	o.scale("delay-", durations)
	o.scale("animate-", []string{"none", "spin", "ping", "pulse", "bounce"})

	return o
}
