// Command heapctl creates, inspects and exercises boundary-tag heaps.
package main

func main() {
	execute()
}
