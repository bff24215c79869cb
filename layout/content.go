package layout

import "strings"

const (
	upperAlphabet = "A B C D E F G H I J K L M N O P Q R S T U V W X Y Z"
	lowerAlphabet = "a b c d e f g h i j k l m n o p q r s t u v w x y z"
	digits        = "0 1 2 3 4 5 6 7 8 9"
	symbols       = `! @ # $ % ^ & * ( ) - + = [ ] { } ; : ' " , . < > ? /`

	// 不同字符组之间用三个空格隔开
	groupSeparator = "   "
)

// ResolveContent 根据内容类型返回要排版的原始文本。
func ResolveContent(c Content) string {
	switch c.Type {
	case ContentText:
		return c.Text
	case ContentLetters:
		return c.Letters
	case ContentAlphabet:
		switch c.AlphabetCase {
		case AlphabetUpper:
			return upperAlphabet
		case AlphabetLower:
			return lowerAlphabet
		default:
			return upperAlphabet + groupSeparator + lowerAlphabet
		}
	case ContentNumbers:
		var groups []string
		if c.IncludeNumbers {
			groups = append(groups, digits)
		}
		if c.IncludeSymbols {
			groups = append(groups, symbols)
		}
		return strings.Join(groups, groupSeparator)
	default:
		return c.Text
	}
}
