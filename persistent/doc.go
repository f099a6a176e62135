/*
Immutable persistent data structures are data structures which can be copied and
modified efficiently, leaving the original unchanged. Functional programming
languages like Lisp have long relied on using them. The packages in this folder
collect such structures; currently the singly-linked cons list, the classic
workhorse of functional programming.

Persistent structures share substructure between incarnations: a list and its
tail are different values referring to the same chain of cells, and no operation
ever mutates a cell once it has been created. This makes making "copies" cheap
in terms of space- and time-complexity, and makes concurrent read access safe
without synchronization.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
