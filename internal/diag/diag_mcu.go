//go:build cc3000debug && avr

package diag

const Enabled = true

// Println writes msg to the serial console. Key/value pairs are printed as
// given; the MCU build carries no formatter.
func Println(msg string, kv ...any) {
	print("cc3000: ", msg)
	for i := 0; i+1 < len(kv); i += 2 {
		k, _ := kv[i].(string)
		print(" ", k, "=")
		switch v := kv[i+1].(type) {
		case string:
			print(v)
		case int:
			print(v)
		case uint8:
			print(v)
		case uint16:
			print(v)
		case uint32:
			print(v)
		case bool:
			print(v)
		case error:
			print(v.Error())
		default:
			print("?")
		}
	}
	println()
}
